package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/model"
)

type resistResponder struct {
	autocompleteLimit int
	emojis            Emojis
}

func (resp resistResponder) Handle(
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
		return nil, fmt.Errorf("could not get opposing type combo: %w", err)
	}

	opts := mdl.DefenseOptions(combo)

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       comboTitle(combo, resp.emojis),
				Description: "Types to defend with against this attacker",
				Fields: []*discordgo.MessageEmbedField{
					matchupsToField("Resistant", opts.Resistant, resp.emojis),
					matchupsToField("Vulnerable", opts.Vulnerable, resp.emojis),
				},
			},
		},
	}, nil
}

func (resp resistResponder) Autocomplete(
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

func (builder *Builder) resist() Command {
	resp := resistResponder{
		autocompleteLimit: builder.config.Discord.AutocompleteLimit,
		emojis:            builder.emojis,
	}

	return command[comboOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "resist",
			Description: "View which defending types resist or fall to an attacking type combination.",
			Options:     comboCommandOptions("attacker"),
		},
	}
}
