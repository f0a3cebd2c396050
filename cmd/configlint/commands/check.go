// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mocklab/configlint/cmd/configlint/internal/clierr"
	"github.com/mocklab/configlint/internal/report"
	"github.com/mocklab/configlint/internal/schemastore"
)

// NewCheckCommand returns the `configlint check` command.
func NewCheckCommand() *cobra.Command {
	var (
		schemaPath       string
		schemaExtras     []string
		schemaVersion    string
		envFile          string
		checkExpressions bool
	)

	cmd := &cobra.Command{
		Use:   "check <dir>",
		Short: "Validate configuration files in a directory against the config schema",
		Long:  "Recursively discovers *-config.yaml, *-config.yml and *-config.json files under the given directory and validates every YAML document in them against the selected schema.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return clierr.Wrapf(1, err, "failed to load env file %s", envFile)
				}
			}

			store, err := loadStore(schemaPath, schemaExtras, schemaVersion)
			if err != nil {
				return clierr.Wrap(1, "failed to load schema", err)
			}
			schema, err := store.Compile()
			if err != nil {
				return clierr.Wrap(1, "failed to compile schema", err)
			}

			runner := &report.Runner{
				Schema:           schema,
				Out:              cmd.OutOrStdout(),
				CheckExpressions: checkExpressions,
			}
			summary, err := runner.Run(args[0])
			if err != nil {
				return clierr.Wrap(1, "validation run failed", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nSummary: %d/%d files valid\n", summary.Valid, summary.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to an alternate base schema file (overrides --schema-version)")
	cmd.Flags().StringArrayVar(&schemaExtras, "schema-extra", nil, "Auxiliary schema file referenced by the base schema (repeatable)")
	cmd.Flags().StringVar(&schemaVersion, "schema-version", string(schemastore.VersionCurrent), "Bundled schema variant to validate against (current|legacy)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Dotenv file to load before substituting ${env.*} placeholders")
	cmd.Flags().BoolVar(&checkExpressions, "check-expressions", false, "Also compile jsonPath matcher expressions found in documents")

	return cmd
}

// loadStore builds the schema store either from files given on the
// command line or from the bundled assets.
func loadStore(schemaPath string, extras []string, version string) (*schemastore.Store, error) {
	if schemaPath != "" {
		return schemastore.Load(schemaPath, extras...)
	}
	v, err := schemastore.ParseVersion(version)
	if err != nil {
		return nil, err
	}
	return schemastore.LoadEmbedded(v)
}
