package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/command"
	"github.com/notjagan/matchup/pkg/config"
	"github.com/notjagan/matchup/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBot(t *testing.T) *Bot {
	t.Helper()
	cfg := config.Default()
	cfg.Discord.Token = "token"

	bot, err := New(cfg, model.New())
	require.NoError(t, err)
	return bot
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New(config.Default(), model.New())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestCommandLookup(t *testing.T) {
	bot := testBot(t)
	assert.Len(t, bot.commands, 3)

	cmd, err := bot.command(&discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "weak"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "weak", cmd.Name())

	_, err = bot.command(&discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommandAutocomplete,
			Data: discordgo.ApplicationCommandInteractionData{Name: "dex"},
		},
	})
	assert.ErrorIs(t, err, ErrNoMatchingCommand)

	_, err = bot.command(&discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: "x"},
		},
	})
	assert.ErrorIs(t, err, command.ErrUnrecognizedInteraction)
}

func TestCloseWithoutSession(t *testing.T) {
	testBot(t).Close()
}
