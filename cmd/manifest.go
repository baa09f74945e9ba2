package cmd

import (
	"context"
	"fmt"

	"server-launcher/core/config"

	"github.com/spf13/cobra"
)

// manifestCmd represents the manifest command
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the platform function declaration",
	Long:  `Prints the configured function (image, secrets, warm containers, web endpoint) as YAML for deployment tooling.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		app, err := declareApp(cfg, func(context.Context) error { return nil })
		if err != nil {
			return err
		}

		out, err := app.Manifest().YAML()
		if err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	RootCmd.AddCommand(manifestCmd)
}
