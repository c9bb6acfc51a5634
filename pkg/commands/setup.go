// Package commands provides public access to wizard-kit commands for embedding in other CLIs.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/pixie-sh/wizard-kit/internal/cli/wizard/setup_cmd"
)

// SetupCmd returns the interactive project setup command.
// It walks a multi-group interview (project info, optional features,
// extras), shows a summary table, and asks for a final
// proceed/restart/abort confirmation before planning the scaffold.
func SetupCmd() *cobra.Command {
	return setup_cmd.SetupCmd()
}
