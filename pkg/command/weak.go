package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/model"
)

type weakResponder struct {
	autocompleteLimit int
	emojis            Emojis
}

func (resp weakResponder) Handle(
	ctx context.Context,
	mdl *model.Model,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *comboOptions,
) (*discordgo.InteractionResponseData, error) {
	combo, err := mdl.ParseTypeCombo(opt.names()...)
	if err != nil {
		if reply := comboReply(err); reply != nil {
			return reply, nil
		}
		return nil, fmt.Errorf("could not get defending type combo: %w", err)
	}

	opts := mdl.AttackOptions(combo)
	effs := make([]model.TypeEfficacy, 0, len(opts.SuperEffective)+len(opts.NotVeryEffective))
	effs = append(effs, opts.SuperEffective...)
	effs = append(effs, opts.NotVeryEffective...)

	fields, err := efficaciesToFields(effs, efficacyNames{
		doubleStrong: "Weaknesses (4x)",
		strong:       "Weaknesses (2x)",
		weak:         "Resistances (0.5x)",
		doubleWeak:   "Resistances (0.25x)",
		immune:       "Immunities",
	}, resp.emojis)
	if err != nil {
		return nil, fmt.Errorf("could not encode type efficacies: %w", err)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       comboTitle(combo, resp.emojis),
				Description: "Defensive type chart",
				Fields:      fields,
			},
		},
	}, nil
}

func (resp weakResponder) Autocomplete(
	ctx context.Context,
	mdl *model.Model,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *comboOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	prefix, err := opt.focused()
	if err != nil {
		return nil, err
	}

	s := typeSearcher{
		model:  mdl,
		prefix: prefix,
		limit:  resp.autocompleteLimit,
	}
	return searchChoices[model.Type](s), nil
}

func (builder *Builder) weak() Command {
	resp := weakResponder{
		autocompleteLimit: builder.config.Discord.AutocompleteLimit,
		emojis:            builder.emojis,
	}

	return command[comboOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "View which attacking types hit a defending type combination hard or poorly.",
			Options:     comboCommandOptions("defender"),
		},
	}
}
