package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/chargen/internal/application/handlers"
)

type generateFlags struct {
	gender   string
	themes   []string
	positive int
	negative int
	items    int
	json     bool
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random character",
		Long: `Generates a character with a name, positive and negative features, and items.
Quantities default to the generation section of the config. Exits non-zero when
the catalog cannot satisfy the request.`,
		Example: `  chargen generate --gender feminine --theme Brasil --items 1
  chargen generate --positive 0 --negative 0 --items 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.gender, "gender", "g", "any", "Name gender")
	cmd.Flags().StringArrayVarP(&flags.themes, "theme", "t", nil, "Restrict selection to a theme (repeatable)")
	cmd.Flags().IntVarP(&flags.positive, "positive", "p", 0, "Number of positive features")
	cmd.Flags().IntVarP(&flags.negative, "negative", "n", 0, "Number of negative features")
	cmd.Flags().IntVarP(&flags.items, "items", "i", 0, "Number of items")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print JSON")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ctx := cmd.Context()
	input := generateInput(cmd, flags)

	return withDeps(ctx, func(d *Deps) error {
		outcome, err := d.GenerateHandler.Handle(ctx, input)
		if err != nil {
			return fmt.Errorf("generating character: %w", err)
		}
		if outcome.Shortage != nil {
			return outcome.Shortage
		}

		if flags.json {
			return writeJSON(cmd.OutOrStdout(), outcome.Character)
		}
		writeCharacter(cmd.OutOrStdout(), outcome.Character)
		return nil
	})
}

// generateInput keeps quantities the user did not set unset, so the
// configured defaults apply.
func generateInput(cmd *cobra.Command, flags generateFlags) handlers.GenerateInput {
	input := handlers.GenerateInput{Gender: flags.gender}
	if cmd.Flags().Changed("theme") {
		input.Themes = flags.themes
	}
	if cmd.Flags().Changed("positive") {
		input.PositiveFeatures = &flags.positive
	}
	if cmd.Flags().Changed("negative") {
		input.NegativeFeatures = &flags.negative
	}
	if cmd.Flags().Changed("items") {
		input.Items = &flags.items
	}
	return input
}
