package cmd

import (
	"fmt"

	"github.com/livedirtree/treerelay/config"
	"github.com/spf13/cobra"
)

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treerelay %s (%s)\n", config.Version(), config.Commit())
		},
	}
}
