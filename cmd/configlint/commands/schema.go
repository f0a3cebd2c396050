// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mocklab/configlint/cmd/configlint/internal/clierr"
	"github.com/mocklab/configlint/internal/schemastore"
)

// NewSchemaCommand returns the `configlint schema` command group.
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the bundled config schemas",
	}

	cmd.AddCommand(newSchemaDumpCommand())
	cmd.AddCommand(newSchemaListCommand())

	return cmd
}

// newSchemaDumpCommand prints a bundled schema document as indented
// JSON. The output can be saved and fed back through `check --schema`.
func newSchemaDumpCommand() *cobra.Command {
	var schemaVersion string

	cmd := &cobra.Command{
		Use:   "dump [document]",
		Short: "Print a bundled schema document as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadEmbeddedStore(schemaVersion)
			if err != nil {
				return err
			}

			key := store.BaseKey()
			if len(args) == 1 {
				key = args[0]
			}
			data, err := store.Dump(key)
			if err != nil {
				return clierr.Wrap(1, "failed to dump schema", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaVersion, "schema-version", string(schemastore.VersionCurrent), "Bundled schema variant (current|legacy)")

	return cmd
}

func newSchemaListCommand() *cobra.Command {
	var schemaVersion string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the documents in a bundled schema variant",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadEmbeddedStore(schemaVersion)
			if err != nil {
				return err
			}
			for _, key := range store.Keys() {
				marker := " "
				if key == store.BaseKey() {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaVersion, "schema-version", string(schemastore.VersionCurrent), "Bundled schema variant (current|legacy)")

	return cmd
}

func loadEmbeddedStore(version string) (*schemastore.Store, error) {
	v, err := schemastore.ParseVersion(version)
	if err != nil {
		return nil, clierr.Wrap(1, "failed to load schema", err)
	}
	store, err := schemastore.LoadEmbedded(v)
	if err != nil {
		return nil, clierr.Wrap(1, "failed to load schema", err)
	}
	return store, nil
}
