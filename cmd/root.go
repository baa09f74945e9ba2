package cmd

import (
	"fmt"
	"os"

	"server-launcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where LoadConfig looks for a .env file.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "server-launcher",
	Short: "Backend server launcher",
	Long: `Server Launcher declares the backend as a platform function and starts the
prebuilt server binary inside the container, keeping it on a fixed port.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 output for a CLI failure.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing the .env file")
}
