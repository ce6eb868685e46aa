package cmd

import (
	"fmt"
	"os"

	"github.com/livedirtree/treerelay/cmd/config"
	"github.com/livedirtree/treerelay/cmd/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	r := &cobra.Command{
		Use:   "treerelay",
		Short: "treerelay relays Roblox Studio directory trees to editor extensions.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := cmd.Flags().GetString(types.FlagLogLevel)
			if err != nil {
				return err
			}
			return setLogLevel(logLevel)
		},
	}

	r.PersistentFlags().String(types.FlagHome, types.DefaultHome, "directory holding config.yaml and the saved tree")
	r.PersistentFlags().String(types.FlagLogLevel, types.DefaultLogLevel, "log level (debug, info, warn, error)")

	r.AddCommand(StartCmd(), RenderCmd(), VersionCmd(), config.ConfigCmd())

	return r
}

func setLogLevel(level string) error {
	switch level {
	case "debug":
		log.Logger = log.Level(zerolog.DebugLevel)
	case "info":
		log.Logger = log.Level(zerolog.InfoLevel)
	case "warn":
		log.Logger = log.Level(zerolog.WarnLevel)
	case "error":
		log.Logger = log.Level(zerolog.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
