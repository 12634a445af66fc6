package main

import (
	"errors"
	"fmt"

	"github.com/notjagan/matchup/pkg/config"
	"github.com/notjagan/matchup/pkg/logging"
	"github.com/notjagan/matchup/pkg/model"
	"github.com/notjagan/matchup/pkg/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

type rootOptions struct {
	verbosity  int
	configPath string
	format     string
	noColor    bool

	config *config.Config
	model  *model.Model
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{model: model.New()}

	cmd := &cobra.Command{
		Use:   "matchup",
		Short: "Pokemon type matchup calculator",
		Long: `matchup answers which attacking types to use against a defending type
combination, and which types to defend with against an attacker.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(opts.configPath)
			if err != nil {
				return fmt.Errorf("could not read configuration: %w", err)
			}
			opts.config = cfg

			err = logging.Setup(cmd.ErrOrStderr(), opts.verbosity, cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("could not set up logging: %w", err)
			}

			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("format %q: %w", opts.format, ErrUnknownFormat)
			}

			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "Output format (text or json)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(
		newAttackCmd(opts),
		newDefendCmd(opts),
		newTypesCmd(opts),
		newExportCmd(opts),
		newBotCmd(opts),
	)

	return cmd
}

func (opts *rootOptions) renderer(cmd *cobra.Command) *render.Renderer {
	out := cmd.OutOrStdout()
	return render.New(out, !opts.noColor && logging.IsTerminal(out))
}
