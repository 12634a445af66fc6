package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/model"
)

var ErrCommandFormat = errors.New("invalid command format")

type comboOptions struct {
	Type1 discordField[string]  `option:"type_1"`
	Type2 *discordField[string] `option:"type_2"`
}

func (opt *comboOptions) names() []string {
	names := []string{opt.Type1.Value}
	if opt.Type2 != nil {
		names = append(names, opt.Type2.Value)
	}
	return names
}

// focused returns the value of whichever type field is being typed into.
func (opt *comboOptions) focused() (string, error) {
	switch {
	case opt.Type1.Focused:
		return opt.Type1.Value, nil
	case opt.Type2 != nil && opt.Type2.Focused:
		return opt.Type2.Value, nil
	default:
		return "", fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}
}

func comboCommandOptions(role string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "type_1",
			Description:  fmt.Sprintf("First type of the %s", role),
			Required:     true,
			Autocomplete: true,
		},
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "type_2",
			Description:  fmt.Sprintf("Second type of the %s", role),
			Required:     false,
			Autocomplete: true,
		},
	}
}

// comboReply maps a caller mistake in the type options to a user-facing
// message. It returns nil for any other error.
func comboReply(err error) *discordgo.InteractionResponseData {
	switch {
	case errors.Is(err, model.ErrUnknownType):
		return &discordgo.InteractionResponseData{
			Content: "No type found with that name.",
		}
	case errors.Is(err, model.ErrTypeComboSize):
		return &discordgo.InteractionResponseData{
			Content: "A Pokemon has at most two types.",
		}
	default:
		return nil
	}
}

func searchChoices[T model.Localizer](s searcher[T]) []*discordgo.ApplicationCommandOptionChoice {
	results := s.Search()

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, res := range results {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  res.LocalizedName(),
			Value: s.Value(res),
		}
	}

	return choices
}

func comboTitle(combo model.TypeCombo, emojis Emojis) string {
	labels := make([]string, 0, combo.Len())
	for _, typ := range combo.Types() {
		labels = append(labels, emojis.Label(typ))
	}
	return strings.Join(labels, " ")
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	weak         string
	doubleWeak   string
	immune       string
}

func efficaciesToFields(
	effs []model.TypeEfficacy,
	names efficacyNames,
	emojis Emojis,
) ([]*discordgo.MessageEmbedField, error) {
	n := len(effs)
	doubleStrengths := make([]string, 0, n)
	strengths := make([]string, 0, n)
	weaks := make([]string, 0, n)
	doubleWeaks := make([]string, 0, n)
	immunes := make([]string, 0, n)

	for _, te := range effs {
		label := emojis.Label(te.Type)

		switch te.Level {
		case model.DoubleSuperEffective:
			doubleStrengths = append(doubleStrengths, label)
		case model.SuperEffective:
			strengths = append(strengths, label)
		case model.NotVeryEffective:
			weaks = append(weaks, label)
		case model.DoubleNotVeryEffective:
			doubleWeaks = append(doubleWeaks, label)
		case model.Immune:
			immunes = append(immunes, label)
		default:
			return nil, fmt.Errorf("unexpected type efficacy level %d: %w", te.Level, ErrUnrecognizedInteraction)
		}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, 5)
	for _, bucket := range []struct {
		name   string
		labels []string
	}{
		{names.doubleStrong, doubleStrengths},
		{names.strong, strengths},
		{names.weak, weaks},
		{names.doubleWeak, doubleWeaks},
		{names.immune, immunes},
	} {
		if len(bucket.labels) == 0 {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  bucket.name,
			Value: strings.Join(bucket.labels, " "),
		})
	}

	return fields, nil
}

func matchupsToField(name string, matchups []model.DefensiveMatchup, emojis Emojis) *discordgo.MessageEmbedField {
	if len(matchups) == 0 {
		return &discordgo.MessageEmbedField{
			Name:  name,
			Value: "_None_",
		}
	}

	lines := make([]string, len(matchups))
	for i, m := range matchups {
		effs := make([]string, len(m.Efficacies))
		for j, eff := range m.Efficacies {
			effs[j] = fmt.Sprintf("%s `%s`", eff.OpposingType.LocalizedName(), eff.Level)
		}
		lines[i] = fmt.Sprintf("%s ▸ %s", emojis.Label(m.Type), strings.Join(effs, ", "))
	}

	return &discordgo.MessageEmbedField{
		Name:  name,
		Value: strings.Join(lines, "\n"),
	}
}
