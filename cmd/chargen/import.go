package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/chargen/internal/application/handlers"
	"github.com/ersonp/chargen/internal/domain/services"
)

type importFlags struct {
	format string
	dryRun bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import themes, names, features and items from JSON or YAML",
		Long:  "Imports a seed catalog. Existing rows are left untouched; invalid records are reported and skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format ("+strings.Join(validFormats, ", ")+")")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid --format value %q (valid: %s)", flags.format, strings.Join(validFormats, ", "))
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		fmt.Fprintf(out, "Importing %s...\n", filePath)

		result, err := d.ImportHandler.Handle(ctx, filePath, handlers.ImportOptions{
			Format: flags.format,
			DryRun: flags.dryRun,
		})
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		writeImportResult(out, result, flags.dryRun)
		return nil
	})
}

func writeImportResult(w io.Writer, result *services.ImportResult, dryRun bool) {
	// Display errors
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nValidation errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
	}

	// Display summary
	c := result.Imported
	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprint(w, "Dry run: would import")
	} else {
		fmt.Fprint(w, "Imported:")
	}
	fmt.Fprintf(w, " %d themes, %d names, %d features, %d items (%d theme links)",
		c.Themes, c.Names, c.Features, c.Items, c.Links)

	if result.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped (already exist)", result.Skipped)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, ", %d errors", len(result.Errors))
	}

	fmt.Fprintln(w)
}
