package command

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/config"
	"github.com/notjagan/matchup/pkg/model"
)

type commandFunc func(*Builder) Command

type Builder struct {
	config config.Config
	emojis Emojis
	funcs  []commandFunc
}

func NewBuilder(cfg config.Config, emojis Emojis) *Builder {
	return &Builder{
		config: cfg,
		emojis: emojis,
		funcs: []commandFunc{
			(*Builder).types,
			(*Builder).weak,
			(*Builder).resist,
		},
	}
}

func (builder *Builder) All() []Command {
	cmds := make([]Command, len(builder.funcs))
	for i, f := range builder.funcs {
		cmds[i] = f(builder)
	}

	return cmds
}

type noOptions struct{}

type typesResponder struct {
	emojis Emojis
}

func (resp typesResponder) Handle(
	ctx context.Context,
	mdl *model.Model,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *noOptions,
) (*discordgo.InteractionResponseData, error) {
	typs := mdl.Types()
	labels := make([]string, len(typs))
	for i, typ := range typs {
		labels[i] = resp.emojis.Label(typ)
	}

	return &discordgo.InteractionResponseData{
		Content: strings.Join(labels, "\n"),
	}, nil
}

func (builder *Builder) types() Command {
	return command[noOptions]{
		handler: typesResponder{emojis: builder.emojis},
		command: discordgo.ApplicationCommand{
			Name:        "types",
			Description: "List every type.",
		},
	}
}
