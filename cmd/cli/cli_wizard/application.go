package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixie-sh/wizard-kit/internal/cli/wizard/setup_cmd"
	"github.com/pixie-sh/wizard-kit/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "wizard",
		Short:   "Wizard CLI - Interactive Project Setup",
		Long:    "Wizard CLI walks you through configuring a new project with an interactive interview.",
		Version: version.Info(),
	}

	// Custom version template
	rootCmd.SetVersionTemplate("wizard version {{.Version}}\n")

	// Add flags for config and env
	rootCmd.PersistentFlags().String("config", "", "Path to configuration file")
	rootCmd.PersistentFlags().String("env", "", "Path to environment file")

	// Register commands
	rootCmd.AddCommand(setup_cmd.SetupCmd())

	// Add version command for explicit version info
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wizard version %s\n", version.Info())
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
