package cli

import (
	"fmt"
	"strings"

	"github.com/createproject-labs/createproject/internal/branding"
	"github.com/createproject-labs/createproject/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  configLong(),
}

func configLong() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Read and write settings stored at ~/%s/config.yaml.\n\n", branding.HomeDir())
	b.WriteString("Keys and the environment variables that override them:\n")
	for _, key := range config.Keys {
		fmt.Fprintf(&b, "  %-16s %s\n", key, branding.EnvVar(key))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
