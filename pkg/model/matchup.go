package model

import (
	"sort"
)

// SuperEffective lists the attacking types whose combined level against the
// defending combo exceeds NormalEffective, strongest first. Ties keep
// enumeration order.
func (m *Model) SuperEffective(combo TypeCombo) []TypeEfficacy {
	effs := make([]TypeEfficacy, 0)
	if combo.IsEmpty() {
		return effs
	}

	for _, atk := range m.Types() {
		lvl := m.combinedEfficacy(atk, combo)
		if lvl > NormalEffective {
			effs = append(effs, TypeEfficacy{Type: atk, Level: lvl})
		}
	}

	sort.SliceStable(effs, func(i, j int) bool {
		return effs[i].Level > effs[j].Level
	})

	return effs
}

// NotVeryEffective lists the attacking types whose combined level against the
// defending combo is below NormalEffective, weakest first. Ties keep
// enumeration order.
func (m *Model) NotVeryEffective(combo TypeCombo) []TypeEfficacy {
	effs := make([]TypeEfficacy, 0)
	if combo.IsEmpty() {
		return effs
	}

	for _, atk := range m.Types() {
		lvl := m.combinedEfficacy(atk, combo)
		if lvl < NormalEffective {
			effs = append(effs, TypeEfficacy{Type: atk, Level: lvl})
		}
	}

	sort.SliceStable(effs, func(i, j int) bool {
		return effs[i].Level < effs[j].Level
	})

	return effs
}

// ResistantTypes lists the defending types that take at most
// NotVeryEffective from at least one of the opponent's types. Each opponent
// type is treated as a separate attack.
func (m *Model) ResistantTypes(opponent TypeCombo) []DefensiveMatchup {
	matchups := make([]DefensiveMatchup, 0)
	if opponent.IsEmpty() {
		return matchups
	}

	for _, def := range m.Types() {
		resistances := make([]OpposingEfficacy, 0, opponent.Len())
		resistant := false
		for _, atk := range opponent.types {
			lvl := m.efficacy(atk, def)
			resistances = append(resistances, OpposingEfficacy{OpposingType: atk, Level: lvl})
			if lvl <= NotVeryEffective {
				resistant = true
			}
		}

		if resistant {
			matchups = append(matchups, DefensiveMatchup{Type: def, Efficacies: resistances})
		}
	}

	return matchups
}

// VulnerableTypes lists the defending types that take at least
// SuperEffective from at least one of the opponent's types. A type may be
// both resistant and vulnerable to a dual-typed opponent.
func (m *Model) VulnerableTypes(opponent TypeCombo) []DefensiveMatchup {
	matchups := make([]DefensiveMatchup, 0)
	if opponent.IsEmpty() {
		return matchups
	}

	for _, def := range m.Types() {
		weaknesses := make([]OpposingEfficacy, 0, opponent.Len())
		weak := false
		for _, atk := range opponent.types {
			lvl := m.efficacy(atk, def)
			weaknesses = append(weaknesses, OpposingEfficacy{OpposingType: atk, Level: lvl})
			if lvl >= SuperEffective {
				weak = true
			}
		}

		if weak {
			matchups = append(matchups, DefensiveMatchup{Type: def, Efficacies: weaknesses})
		}
	}

	return matchups
}

// AttackOptions answers which types to attack a defender of the given combo
// with.
func (m *Model) AttackOptions(defender TypeCombo) AttackOptions {
	return AttackOptions{
		SuperEffective:   m.SuperEffective(defender),
		NotVeryEffective: m.NotVeryEffective(defender),
	}
}

// DefenseOptions answers which types to defend with, or avoid, against an
// opponent attacking with its own types.
func (m *Model) DefenseOptions(opponent TypeCombo) DefenseOptions {
	return DefenseOptions{
		Resistant:  m.ResistantTypes(opponent),
		Vulnerable: m.VulnerableTypes(opponent),
	}
}
