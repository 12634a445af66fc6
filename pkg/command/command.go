package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/model"
)

type (
	Command interface {
		ApplicationCommand() *discordgo.ApplicationCommand
		Name() string
		Response(context.Context, *model.Model, *discordgo.Session, *discordgo.InteractionCreate) (*discordgo.InteractionResponse, error)
	}

	handler[T any] interface {
		Handle(
			context.Context,
			*model.Model,
			*discordgo.Session,
			*discordgo.InteractionCreate,
			*T,
		) (*discordgo.InteractionResponseData, error)
	}

	autocompleter[T any] interface {
		Autocomplete(
			context.Context,
			*model.Model,
			*discordgo.Session,
			*discordgo.InteractionCreate,
			*T,
		) ([]*discordgo.ApplicationCommandOptionChoice, error)
	}

	command[T any] struct {
		command       discordgo.ApplicationCommand
		handler       handler[T]
		autocompleter autocompleter[T]
	}
)

func (cmd command[T]) ApplicationCommand() *discordgo.ApplicationCommand {
	return &cmd.command
}

func (cmd command[T]) Name() string {
	return cmd.command.Name
}

var ErrUnrecognizedInteraction = errors.New("could not handle interaction")

// Response decodes the interaction options into T and builds the reply for
// either a command invocation or an autocomplete request.
func (cmd command[T]) Response(
	ctx context.Context,
	mdl *model.Model,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) (*discordgo.InteractionResponse, error) {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		if cmd.handler == nil {
			return nil, fmt.Errorf("no handler for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
		}

		var opt T
		err := decodeOptions(interaction.ApplicationCommandData().Options, &opt)
		if err != nil {
			return nil, fmt.Errorf("error while decoding options for command %q: %w", cmd.Name(), err)
		}

		body, err := cmd.handler.Handle(ctx, mdl, sess, interaction, &opt)
		if err != nil {
			return nil, fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: body,
		}, nil
	case discordgo.InteractionApplicationCommandAutocomplete:
		if cmd.autocompleter == nil {
			return nil, fmt.Errorf("no autocompleter for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
		}

		var opt T
		err := decodeOptions(interaction.ApplicationCommandData().Options, &opt)
		if err != nil {
			return nil, fmt.Errorf("error while decoding options for autocomplete: %w", err)
		}

		choices, err := cmd.autocompleter.Autocomplete(ctx, mdl, sess, interaction, &opt)
		if err != nil {
			return nil, fmt.Errorf("error while calling autocompletion handler: %w", err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionApplicationCommandAutocompleteResult,
			Data: &discordgo.InteractionResponseData{
				Choices: choices,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported interaction type %q: %w", interaction.Type, ErrUnrecognizedInteraction)
	}
}

var ErrDecodeOption = errors.New("error while decoding options")

type discordValue interface {
	string | int | bool
}

type discordField[T discordValue] struct {
	Value   T
	Focused bool
}

var fieldTypes = map[reflect.Type]bool{
	reflect.TypeOf(discordField[string]{}): true,
	reflect.TypeOf(discordField[int]{}):    true,
	reflect.TypeOf(discordField[bool]{}):   true,
}

// decodeOptions fills the fields of structure tagged `option:"name"` from the
// matching interaction options. Pointer fields stay nil when their option is
// absent.
func decodeOptions(options []*discordgo.ApplicationCommandInteractionDataOption, structure any) (ret error) {
	defer func() {
		r := recover()
		if err, ok := r.(*reflect.ValueError); ok {
			ret = fmt.Errorf("reflection error while decoding options: %v: %w", err.Error(), ErrDecodeOption)
		} else if r != nil {
			panic(r)
		}
	}()

	value := reflect.Indirect(reflect.ValueOf(structure))
	if value.Kind() != reflect.Struct || !value.CanAddr() {
		return fmt.Errorf("value is not an addressable struct: %w", ErrDecodeOption)
	}

	m := make(map[string]reflect.Value, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		tfield := value.Type().Field(i)
		option := tfield.Tag.Get("option")
		if option == "" {
			continue
		}

		if !field.CanSet() {
			return fmt.Errorf("field %q cannot be set: %w", tfield.Name, ErrDecodeOption)
		}
		m[option] = field
	}

	for _, option := range options {
		field, ok := m[option.Name]
		if !ok {
			return fmt.Errorf("unexpected option name %q: %w", option.Name, ErrDecodeOption)
		}

		if field.Kind() == reflect.Pointer {
			ptr := reflect.New(field.Type().Elem())
			field.Set(ptr)

			field = ptr.Elem()
		}
		if field.Kind() == reflect.Struct && fieldTypes[field.Type()] {
			field.FieldByName("Focused").SetBool(option.Focused)
			field = field.FieldByName("Value")
		}

		switch option.Type {
		case discordgo.ApplicationCommandOptionString:
			if field.Kind() == reflect.String {
				field.SetString(option.StringValue())
				continue
			}
		case discordgo.ApplicationCommandOptionInteger:
			if field.Kind() == reflect.Int {
				field.SetInt(option.IntValue())
				continue
			}
		case discordgo.ApplicationCommandOptionBoolean:
			if field.Kind() == reflect.Bool {
				field.SetBool(option.BoolValue())
				continue
			}
		case discordgo.ApplicationCommandOptionSubCommand:
			if field.Kind() == reflect.Struct {
				err := decodeOptions(option.Options, field.Addr().Interface())
				if err != nil {
					return fmt.Errorf("error while decoding options for subcommand %q: %w", option.Name, err)
				}

				continue
			}
		default:
			return fmt.Errorf("unsupported type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
		}
		return fmt.Errorf("unexpected type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
	}

	return nil
}
