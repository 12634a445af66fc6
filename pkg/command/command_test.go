package command

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/config"
	"github.com/notjagan/matchup/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringOption(name string, value string, focused bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionString,
		Value:   value,
		Focused: focused,
	}
}

func interaction(typ discordgo.InteractionType, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: typ,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
		},
	}
}

func commands(t *testing.T, emojis Emojis) map[string]Command {
	t.Helper()
	cmds := make(map[string]Command)
	for _, cmd := range NewBuilder(config.Default(), emojis).All() {
		cmds[cmd.Name()] = cmd
	}
	require.Len(t, cmds, 3)
	return cmds
}

func TestDecodeOptions(t *testing.T) {
	var opt comboOptions
	err := decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("type_1", "fire", false),
		stringOption("type_2", "fl", true),
	}, &opt)
	require.NoError(t, err)

	assert.Equal(t, "fire", opt.Type1.Value)
	require.NotNil(t, opt.Type2)
	assert.Equal(t, "fl", opt.Type2.Value)
	assert.True(t, opt.Type2.Focused)
	assert.Equal(t, []string{"fire", "fl"}, opt.names())

	prefix, err := opt.focused()
	require.NoError(t, err)
	assert.Equal(t, "fl", prefix)
}

func TestDecodeOptionsOptionalAbsent(t *testing.T) {
	var opt comboOptions
	require.NoError(t, decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("type_1", "water", false),
	}, &opt))

	assert.Nil(t, opt.Type2)
	assert.Equal(t, []string{"water"}, opt.names())

	_, err := opt.focused()
	assert.ErrorIs(t, err, ErrCommandFormat)
}

func TestDecodeOptionsErrors(t *testing.T) {
	var opt comboOptions
	err := decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("type_3", "fire", false),
	}, &opt)
	assert.ErrorIs(t, err, ErrDecodeOption)

	err = decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "type_1", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
	}, &opt)
	assert.ErrorIs(t, err, ErrDecodeOption)

	err = decodeOptions(nil, "not a struct")
	assert.ErrorIs(t, err, ErrDecodeOption)
}

func TestWeak(t *testing.T) {
	cmd := commands(t, Emojis{})["weak"]

	resp, err := cmd.Response(context.Background(), model.New(), nil, interaction(
		discordgo.InteractionApplicationCommand,
		"weak",
		stringOption("type_1", "fire", false),
		stringOption("type_2", "flying", false),
	))
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)

	require.Len(t, resp.Data.Embeds, 1)
	embed := resp.Data.Embeds[0]
	assert.Equal(t, "Fire Flying", embed.Title)

	fields := make(map[string]string)
	var order []string
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
		order = append(order, f.Name)
	}
	assert.Equal(t, []string{
		"Weaknesses (4x)",
		"Weaknesses (2x)",
		"Resistances (0.5x)",
		"Resistances (0.25x)",
		"Immunities",
	}, order)
	assert.Equal(t, "Rock", fields["Weaknesses (4x)"])
	assert.Equal(t, "Water Electric", fields["Weaknesses (2x)"])
	assert.Equal(t, "Grass Bug", fields["Resistances (0.25x)"])
	assert.Equal(t, "Ground", fields["Immunities"])
}

func TestWeakCallerErrors(t *testing.T) {
	cmd := commands(t, Emojis{})["weak"]

	resp, err := cmd.Response(context.Background(), model.New(), nil, interaction(
		discordgo.InteractionApplicationCommand,
		"weak",
		stringOption("type_1", "cosmic", false),
	))
	require.NoError(t, err)
	assert.Equal(t, "No type found with that name.", resp.Data.Content)
	assert.Empty(t, resp.Data.Embeds)
}

func TestWeakDuplicateType(t *testing.T) {
	cmd := commands(t, Emojis{})["weak"]
	mdl := model.New()

	single, err := cmd.Response(context.Background(), mdl, nil, interaction(
		discordgo.InteractionApplicationCommand,
		"weak",
		stringOption("type_1", "fire", false),
	))
	require.NoError(t, err)

	double, err := cmd.Response(context.Background(), mdl, nil, interaction(
		discordgo.InteractionApplicationCommand,
		"weak",
		stringOption("type_1", "fire", false),
		stringOption("type_2", "fire", false),
	))
	require.NoError(t, err)

	assert.Equal(t, single, double)
}

func TestResist(t *testing.T) {
	cmd := commands(t, Emojis{})["resist"]

	resp, err := cmd.Response(context.Background(), model.New(), nil, interaction(
		discordgo.InteractionApplicationCommand,
		"resist",
		stringOption("type_1", "water", false),
	))
	require.NoError(t, err)

	require.Len(t, resp.Data.Embeds, 1)
	fields := resp.Data.Embeds[0].Fields
	require.Len(t, fields, 2)

	assert.Equal(t, "Resistant", fields[0].Name)
	assert.Equal(t, []string{
		"Water ▸ Water `0.5x`",
		"Grass ▸ Water `0.5x`",
		"Dragon ▸ Water `0.5x`",
	}, strings.Split(fields[0].Value, "\n"))

	assert.Equal(t, "Vulnerable", fields[1].Name)
	assert.Contains(t, fields[1].Value, "Ground ▸ Water `2x`")
}

func TestAutocomplete(t *testing.T) {
	cmd := commands(t, Emojis{})["resist"]

	resp, err := cmd.Response(context.Background(), model.New(), nil, interaction(
		discordgo.InteractionApplicationCommandAutocomplete,
		"resist",
		stringOption("type_1", "fi", true),
	))
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, resp.Type)
	assert.Equal(t, []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Fire", Value: "fire"},
		{Name: "Fighting", Value: "fighting"},
	}, resp.Data.Choices)
}

func TestTypesCommand(t *testing.T) {
	emojis := Emojis{}
	cmds := commands(t, emojis)
	emojis.Add(&discordgo.Emoji{ID: "42", Name: "fairy"})

	resp, err := cmds["types"].Response(context.Background(), model.New(), nil, interaction(
		discordgo.InteractionApplicationCommand,
		"types",
	))
	require.NoError(t, err)

	lines := strings.Split(resp.Data.Content, "\n")
	require.Len(t, lines, model.NumTypes)
	assert.Equal(t, "Normal", lines[0])
	assert.Equal(t, "<:fairy:42> Fairy", lines[model.NumTypes-1])

	_, err = cmds["types"].Response(context.Background(), model.New(), nil, interaction(
		discordgo.InteractionApplicationCommandAutocomplete,
		"types",
	))
	assert.ErrorIs(t, err, ErrUnrecognizedInteraction)
}
