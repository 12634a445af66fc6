package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/notjagan/matchup/pkg/model"
)

// Renderer writes matchup results to a terminal.
type Renderer struct {
	w  io.Writer
	lg *lipgloss.Renderer

	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Renderer on w. Colour follows the detected profile of w unless
// color is false.
func New(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:       w,
		lg:      lg,
		heading: lg.NewStyle().Bold(true).Underline(true),
		label:   lg.NewStyle().Width(8).PaddingLeft(2),
		muted:   lg.NewStyle().Faint(true).Italic(true),
	}
}

// Badge renders typ as a coloured, padded label.
func (r *Renderer) Badge(typ model.Type) string {
	return r.lg.NewStyle().
		Background(TypeColor(typ)).
		Foreground(TextColor(typ)).
		Padding(0, 1).
		Render(typ.LocalizedName())
}

func (r *Renderer) badges(typs []model.Type) string {
	parts := make([]string, len(typs))
	for i, typ := range typs {
		parts[i] = r.Badge(typ)
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) title(combo model.TypeCombo, desc string) string {
	return fmt.Sprintf("%s  %s", r.badges(combo.Types()), r.muted.Render(desc))
}

type levelGroup struct {
	level model.EfficacyLevel
	types []model.Type
}

// groupByLevel buckets consecutive efficacies of equal level.
func groupByLevel(effs []model.TypeEfficacy) []levelGroup {
	var groups []levelGroup
	for _, eff := range effs {
		if n := len(groups); n > 0 && groups[n-1].level == eff.Level {
			groups[n-1].types = append(groups[n-1].types, eff.Type)
			continue
		}
		groups = append(groups, levelGroup{level: eff.Level, types: []model.Type{eff.Type}})
	}
	return groups
}

func (r *Renderer) efficacySection(b *strings.Builder, heading string, effs []model.TypeEfficacy) {
	b.WriteString(r.heading.Render(heading))
	b.WriteString("\n")
	if len(effs) == 0 {
		b.WriteString(r.label.Render(""))
		b.WriteString(r.muted.Render("None"))
		b.WriteString("\n")
		return
	}

	for _, group := range groupByLevel(effs) {
		b.WriteString(r.label.Render(group.level.String()))
		b.WriteString(r.badges(group.types))
		b.WriteString("\n")
	}
}

func (r *Renderer) matchupSection(b *strings.Builder, heading string, matchups []model.DefensiveMatchup) {
	b.WriteString(r.heading.Render(heading))
	b.WriteString("\n")
	if len(matchups) == 0 {
		b.WriteString("  ")
		b.WriteString(r.muted.Render("None"))
		b.WriteString("\n")
		return
	}

	for _, m := range matchups {
		effs := make([]string, len(m.Efficacies))
		for i, eff := range m.Efficacies {
			effs[i] = fmt.Sprintf("%s %s", eff.OpposingType.LocalizedName(), eff.Level)
		}
		b.WriteString("  ")
		b.WriteString(r.Badge(m.Type))
		b.WriteString(" ")
		b.WriteString(r.muted.Render(strings.Join(effs, ", ")))
		b.WriteString("\n")
	}
}

// Attack writes which attacking types to use against a defender of combo.
func (r *Renderer) Attack(combo model.TypeCombo, opts model.AttackOptions) error {
	var b strings.Builder
	b.WriteString(r.title(combo, "Offensive matchups"))
	b.WriteString("\n\n")
	r.efficacySection(&b, "Super effective", opts.SuperEffective)
	b.WriteString("\n")
	r.efficacySection(&b, "Not very effective", opts.NotVeryEffective)

	_, err := io.WriteString(r.w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write attack options: %w", err)
	}
	return nil
}

// Defense writes which defending types resist or fall to an opponent of
// combo.
func (r *Renderer) Defense(combo model.TypeCombo, opts model.DefenseOptions) error {
	var b strings.Builder
	b.WriteString(r.title(combo, "Defensive matchups"))
	b.WriteString("\n\n")
	r.matchupSection(&b, "Resistant", opts.Resistant)
	b.WriteString("\n")
	r.matchupSection(&b, "Vulnerable", opts.Vulnerable)

	_, err := io.WriteString(r.w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write defense options: %w", err)
	}
	return nil
}

func (r *Renderer) Types(typs []model.Type) error {
	var b strings.Builder
	for _, typ := range typs {
		b.WriteString(r.Badge(typ))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write types: %w", err)
	}
	return nil
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
