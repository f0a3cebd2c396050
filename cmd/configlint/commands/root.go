// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands contains the Cobra command tree for the configlint
// CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the configlint root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CONFIGLINT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "configlint",
		Short:         "configlint - schema validation for mock API configuration files",
		Long:          "configlint checks directories of mock API configuration files against the bundled config schemas and reports per-file results.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of configlint",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "configlint version %s\n", version)
		},
	})

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewSchemaCommand())

	return cmd
}
