package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/chargen/internal/domain/entities"
)

func newListCmd() *cobra.Command {
	var asJSON bool

	validKinds := make([]string, len(entities.Kinds))
	for i, k := range entities.Kinds {
		validKinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:       "list <kind>",
		Short:     "List stored themes, names, features or items",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: validKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}

func runList(cmd *cobra.Command, kind string, asJSON bool) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		rows, err := d.ListHandler.Handle(ctx, kind)
		if err != nil {
			return fmt.Errorf("listing %s: %w", kind, err)
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		writeRows(cmd.OutOrStdout(), rows)
		return nil
	})
}
