package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/command"
	"github.com/notjagan/matchup/pkg/config"
	"github.com/notjagan/matchup/pkg/logging"
	"github.com/notjagan/matchup/pkg/model"
	"github.com/rs/zerolog"
)

type Bot struct {
	config   config.Config
	session  *discordgo.Session
	model    *model.Model
	emojis   command.Emojis
	commands map[string]command.Command
	logger   zerolog.Logger
}

var ErrMissingToken = errors.New("discord token is not set")

func New(cfg config.Config, mdl *model.Model) (*Bot, error) {
	if cfg.Discord.Token == "" {
		return nil, ErrMissingToken
	}

	emojis := command.Emojis{}
	cmds := make(map[string]command.Command)
	for _, cmd := range command.NewBuilder(cfg, emojis).All() {
		cmds[cmd.Name()] = cmd
	}

	return &Bot{
		config:   cfg,
		model:    mdl,
		emojis:   emojis,
		commands: cmds,
		logger:   logging.GetLogger("bot"),
	}, nil
}

func (bot *Bot) Close() {
	bot.logger.Info().Msg("Shutting down")
	if bot.session == nil {
		return
	}
	err := bot.session.Close()
	if err != nil {
		bot.logger.Error().Err(err).Msg("error while closing discord session")
	}
}

var ErrMissingResourceGuild = errors.New("resource guild not found")

func (bot *Bot) loadEmojis() error {
	if bot.config.Discord.EmojiGuild == "" {
		return nil
	}

	emojis, err := bot.session.GuildEmojis(bot.config.Discord.EmojiGuild)
	if err != nil {
		return fmt.Errorf("could not read emojis from guild %q: %w: %v", bot.config.Discord.EmojiGuild, ErrMissingResourceGuild, err)
	}
	bot.emojis.Add(emojis...)
	bot.logger.Debug().Int("count", len(emojis)).Msg("Loaded type emojis")

	return nil
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.config.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	err = bot.loadEmojis()
	if err != nil {
		bot.logger.Warn().Err(err).Msg("falling back to plain type names")
	}

	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		bot.handle(ctx, sess, interaction)
	})

	err = bot.registerCommands()
	if err != nil {
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

func (bot *Bot) Run(ctx context.Context) error {
	err := bot.initialize(ctx)
	if err != nil {
		bot.Close()
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	bot.logger.Info().Msg("Hosting matchup bot")
	defer bot.Close()
	<-ctx.Done()

	return nil
}

var ErrNoMatchingCommand = errors.New("no matching command")

func (bot *Bot) command(interaction *discordgo.InteractionCreate) (command.Command, error) {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
	default:
		return nil, fmt.Errorf("interaction type %q: %w", interaction.Type, command.ErrUnrecognizedInteraction)
	}

	name := interaction.ApplicationCommandData().Name
	cmd, ok := bot.commands[name]
	if !ok {
		return nil, fmt.Errorf("command %q: %w", name, ErrNoMatchingCommand)
	}

	return cmd, nil
}

func (bot *Bot) handle(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
	cmd, err := bot.command(interaction)
	if err != nil {
		bot.logger.Debug().Err(err).Msg("ignoring interaction")
		return
	}

	logger := bot.logger.With().
		Str("command", cmd.Name()).
		Str("guild", interaction.GuildID).
		Stringer("type", interaction.Type).
		Logger()
	logger.Info().Msg("COMMAND")

	resp, err := cmd.Response(ctx, bot.model, sess, interaction)
	if err != nil {
		logger.Error().Err(err).Msg("error while executing command")
		return
	}

	err = sess.InteractionRespond(interaction.Interaction, resp)
	if err != nil {
		logger.Error().Err(err).Msg("error while responding to interaction")
	}
}

func (bot *Bot) registerCommands() error {
	for name, cmd := range bot.commands {
		_, err := bot.session.ApplicationCommandCreate(bot.session.State.User.ID, "", cmd.ApplicationCommand())
		if err != nil {
			return fmt.Errorf("failed to create command %q: %w", name, err)
		}
	}

	return nil
}
