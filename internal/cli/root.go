package cli

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

// NewRoot корневая команда farrier-booking
func NewRoot() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "farrier-booking",
		Short:        "Farrier booking service",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config.toml")

	cmd.AddCommand(NewServeCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
