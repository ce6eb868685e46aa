package cmd

import (
	"fmt"
	"strconv"

	"github.com/livedirtree/treerelay/cmd/types"
	"github.com/livedirtree/treerelay/core"
	"github.com/spf13/cobra"
)

func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [port]",
		Short: "Starts the relay server",
		Long: `Starts the relay server. The optional port overrides api_config.port
from config.yaml (21326 by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(types.FlagHome)
			if err != nil {
				return err
			}

			var opts []core.Option
			if len(args) == 1 {
				port, err := parsePort(args[0])
				if err != nil {
					return err
				}
				opts = append(opts, core.WithPort(port))
			}

			app, err := core.NewApp(home, opts...)
			if err != nil {
				return err
			}

			return app.Start()
		},
	}
}

func parsePort(s string) (int64, error) {
	port, err := strconv.ParseInt(s, 10, 64)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return port, nil
}
