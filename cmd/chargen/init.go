package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/chargen/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config and create the database schema",
		Long:  "Writes " + defaultConfigHint + " unless it exists, then creates the database tables.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	result, err := handlers.EnsureConfig(configPath())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.ConfigCreated {
		fmt.Fprintf(out, "Created config: %s\n", result.ConfigPath)
	} else {
		fmt.Fprintf(out, "Using existing config: %s\n", result.ConfigPath)
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		if err := d.InitHandler.Handle(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Database ready (%s: %s)\n", d.Config.Database.Driver, d.Config.Database.DSN)
		return nil
	})
}
