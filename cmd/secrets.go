package cmd

import (
	"fmt"
	"os"
	"strings"

	"server-launcher/core/config"
	"server-launcher/core/logger"
	"server-launcher/core/storage"
	"server-launcher/feature/secrets"

	"github.com/spf13/cobra"
)

// secretsCmd represents the secrets command
var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Manage secret bundles in object storage",
	Long:  `Lists, inspects, uploads and deletes the dotenv secret bundles injected into the server environment at launch.`,
}

var secretsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List secret bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSecretsService()
		if err != nil {
			return err
		}
		names, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var secretsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the keys of a secret bundle",
	Long:  `Prints the keys of a bundle, defaulting to the function's bundle. Values are never printed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		svc, err := secretsServiceFor(cfg)
		if err != nil {
			return err
		}

		name := cfg.Function.SecretName
		if len(args) == 1 {
			name = args[0]
		}
		keys, err := svc.Keys(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(keys, "\n"))
		return nil
	},
}

var secretsPushCmd = &cobra.Command{
	Use:   "push <name> <file>",
	Short: "Upload a dotenv file as a secret bundle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		svc, err := newSecretsService()
		if err != nil {
			return err
		}
		n, err := svc.Push(cmd.Context(), args[0], data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pushed %s (%d keys)\n", args[0], n)
		return nil
	},
}

var secretsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a secret bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSecretsService()
		if err != nil {
			return err
		}
		return svc.Delete(cmd.Context(), args[0])
	},
}

func newSecretsService() (*secrets.Service, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return secretsServiceFor(cfg)
}

func secretsServiceFor(cfg *config.Config) (*secrets.Service, error) {
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return secrets.NewService(store, cfg.Storage.Bucket, cfg.Secrets.Prefix, logg), nil
}

func init() {
	secretsCmd.AddCommand(secretsListCmd, secretsShowCmd, secretsPushCmd, secretsDeleteCmd)
	RootCmd.AddCommand(secretsCmd)
}
