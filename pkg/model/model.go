package model

import (
	"fmt"
)

// Model answers type matchup queries against an immutable chart. It holds no
// mutable state and is safe for concurrent use.
type Model struct {
	chart *chart
}

func New() *Model {
	return &Model{chart: defaultChart}
}

// Types returns every type in enumeration order.
func (m *Model) Types() []Type {
	typs := make([]Type, len(TypeValues()))
	copy(typs, TypeValues())
	return typs
}

func (m *Model) efficacy(atk Type, def Type) EfficacyLevel {
	return m.chart[atk][def]
}

func (m *Model) combinedEfficacy(atk Type, combo TypeCombo) EfficacyLevel {
	lvl := NormalEffective
	for _, def := range combo.types {
		lvl = lvl.Combine(m.efficacy(atk, def))
	}
	return lvl
}

// Efficacy returns the level an attack of type atk deals to a defender of
// type def. Pairs without an entry in the chart are NormalEffective.
func (m *Model) Efficacy(atk Type, def Type) (EfficacyLevel, error) {
	err := atk.validate()
	if err != nil {
		return 0, fmt.Errorf("invalid attacking type: %w", err)
	}
	err = def.validate()
	if err != nil {
		return 0, fmt.Errorf("invalid defending type: %w", err)
	}

	return m.efficacy(atk, def), nil
}

// CombinedEfficacy multiplies the level of atk against every member of combo.
// The empty combination yields NormalEffective.
func (m *Model) CombinedEfficacy(atk Type, combo TypeCombo) (EfficacyLevel, error) {
	err := atk.validate()
	if err != nil {
		return 0, fmt.Errorf("invalid attacking type: %w", err)
	}

	return m.combinedEfficacy(atk, combo), nil
}
