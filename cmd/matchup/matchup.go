package main

import (
	"fmt"

	"github.com/notjagan/matchup/pkg/render"
	"github.com/spf13/cobra"
)

func newAttackCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "attack TYPE [TYPE]",
		Short: "Show which attacking types hit a defender hard or poorly",
		Example: `  matchup attack ghost
  matchup attack fire flying --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			combo, err := opts.model.ParseTypeCombo(args...)
			if err != nil {
				return fmt.Errorf("invalid defending types: %w", err)
			}

			result := opts.model.AttackOptions(combo)
			if opts.format == formatJSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return opts.renderer(cmd).Attack(combo, result)
		},
	}
}

func newDefendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defend TYPE [TYPE]",
		Short: "Show which defending types resist or fall to an attacker",
		Example: `  matchup defend water
  matchup defend fire water --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			combo, err := opts.model.ParseTypeCombo(args...)
			if err != nil {
				return fmt.Errorf("invalid opposing types: %w", err)
			}

			result := opts.model.DefenseOptions(combo)
			if opts.format == formatJSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return opts.renderer(cmd).Defense(combo, result)
		},
	}
}

func newTypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List every type in chart order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typs := opts.model.Types()
			if opts.format == formatJSON {
				return render.JSON(cmd.OutOrStdout(), typs)
			}
			return opts.renderer(cmd).Types(typs)
		},
	}
}
