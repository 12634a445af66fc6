package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/notjagan/matchup/pkg/model"
)

var typeColors = map[model.Type]lipgloss.Color{
	model.TypeBug:      "#A2A21D",
	model.TypeDark:     "#4E4446",
	model.TypeDragon:   "#6658A5",
	model.TypeElectric: "#E2BD22",
	model.TypeFairy:    "#E28EE3",
	model.TypeFighting: "#E7921C",
	model.TypeFire:     "#E65F3A",
	model.TypeFlying:   "#74ADD3",
	model.TypeGhost:    "#70426F",
	model.TypeGrass:    "#419B35",
	model.TypeGround:   "#A6763A",
	model.TypeIce:      "#4ECCCC",
	model.TypeNormal:   "#858585",
	model.TypePoison:   "#9953C6",
	model.TypePsychic:  "#E86D8F",
	model.TypeRock:     "#ACA77E",
	model.TypeSteel:    "#6CADC8",
	model.TypeWater:    "#2F9BE5",
}

const (
	lightText lipgloss.Color = "#FFFFFF"
	darkText  lipgloss.Color = "#1A1A2E"
)

// TypeColor returns the badge background for typ.
func TypeColor(typ model.Type) lipgloss.Color {
	return typeColors[typ]
}

// TextColor returns a foreground that stays readable on the badge of typ.
func TextColor(typ model.Type) lipgloss.Color {
	switch typ {
	case model.TypeDragon, model.TypeGhost, model.TypeDark, model.TypeFighting, model.TypePoison, model.TypePsychic:
		return lightText
	default:
		return darkText
	}
}
