package main

import (
	"fmt"

	"github.com/notjagan/matchup/pkg/bot"
	"github.com/notjagan/matchup/pkg/export"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the type chart to a SQLite database",
		Long: `Write every type and attacker/defender damage factor to a SQLite database
using the PokeAPI table layout. Existing chart tables are replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = opts.config.DB.Path
			}

			err := export.SQLite(cmd.Context(), opts.model, path)
			if err != nil {
				return fmt.Errorf("export to %q failed: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote type chart to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "db", "", "Database path (defaults to database.path from config)")

	return cmd
}

func newBotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Host the Discord bot until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bot.New(*opts.config, opts.model)
			if err != nil {
				return fmt.Errorf("could not create bot: %w", err)
			}

			return b.Run(cmd.Context())
		},
	}
}
