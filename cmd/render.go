package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/livedirtree/treerelay/cmd/types"
	"github.com/livedirtree/treerelay/config"
	"github.com/livedirtree/treerelay/core"
	"github.com/livedirtree/treerelay/file_system"
	"github.com/livedirtree/treerelay/tree"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Prints a saved tree as text",
		Long: `Prints a saved tree in the same format as GET /tree/text. Without a file
the tree is read from the store configured in config.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)

			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = loadStored(cmd)
			}
			if err != nil {
				return err
			}

			return renderTo(cmd.OutOrStdout(), data)
		},
	}
}

func loadStored(cmd *cobra.Command) ([]byte, error) {
	home, err := cmd.Flags().GetString(types.FlagHome)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Init(home)
	if err != nil {
		return nil, err
	}

	store, err := core.OpenStore(cfg, home)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	data, err := store.Load()
	if errors.Is(err, file_system.ErrNoSnapshot) {
		return nil, fmt.Errorf("no tree saved in %s yet", cfg.StorePath(home))
	}
	return data, err
}

func renderTo(w io.Writer, data []byte) error {
	snap, err := tree.Parse(data)
	if err != nil {
		return err
	}

	log.Debug().
		Str("size", humanize.Bytes(uint64(len(snap.Bytes())))).
		Int("containers", len(snap.Containers())).
		Msg("rendering tree")

	_, err = io.WriteString(w, tree.Text(snap))
	return err
}
