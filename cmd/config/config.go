package config

import (
	"fmt"
	"strings"

	"github.com/livedirtree/treerelay/cmd/types"
	"github.com/livedirtree/treerelay/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the parent command for config operations
func ConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Config subcommands",
	}

	c.AddCommand(showCmd(), getCmd())

	return c
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the entire configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(types.FlagHome)
			if err != nil {
				return err
			}

			cfg, err := config.Init(home)
			if err != nil {
				return err
			}

			data, err := cfg.Export()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get a config value",
		Long: `Get a config value by key. Use dot notation for nested values.

Examples:
  treerelay config get api_config.port
  treerelay config get store.type
  treerelay config get freshness_seconds`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(types.FlagHome)
			if err != nil {
				return err
			}

			cfg, err := config.Init(home)
			if err != nil {
				return err
			}

			value, err := getConfigValue(cfg, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// getConfigValue looks key up in the yaml form of cfg, so keys match the
// config file exactly.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return "", err
	}

	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("unknown config key %s", key)
		}
		node, ok = m[part]
		if !ok {
			return "", fmt.Errorf("unknown config key %s", key)
		}
	}

	if _, ok := node.(map[string]any); ok {
		out, err := yaml.Marshal(node)
		if err != nil {
			return "", fmt.Errorf("failed to serialize %s: %w", key, err)
		}
		return strings.TrimSpace(string(out)), nil
	}

	return fmt.Sprintf("%v", node), nil
}
