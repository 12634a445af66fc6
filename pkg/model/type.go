package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:generate enumer -type=Type -trimprefix=Type -transform=lower -text

// Type is one of the fixed set of combat types. The declaration order is the
// canonical enumeration order used by every scan over the type universe.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

const NumTypes = int(TypeFairy) + 1

var ErrUnknownType = errors.New("unknown type")

var titleCaser = cases.Title(language.English)

func (typ Type) LocalizedName() string {
	return titleCaser.String(typ.String())
}

func (typ Type) validate() error {
	if !typ.IsAType() {
		return fmt.Errorf("type value %d: %w", uint8(typ), ErrUnknownType)
	}

	return nil
}

func (m *Model) TypeByName(name string) (Type, error) {
	typ, err := TypeString(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("no type named %q: %w", name, ErrUnknownType)
	}

	return typ, nil
}

// SearchTypes returns up to limit types whose localized name starts with
// prefix, case-insensitively, in enumeration order. A non-positive limit means
// no limit.
func (m *Model) SearchTypes(prefix string, limit int) []Type {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	var typs []Type
	for _, typ := range m.Types() {
		if limit > 0 && len(typs) == limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(typ.LocalizedName()), prefix) {
			typs = append(typs, typ)
		}
	}

	return typs
}

var ErrTypeComboSize = errors.New("a type combination holds at most two types")

// TypeCombo is the typing of a single combatant: zero, one or two distinct
// types. The zero value is the empty combination.
type TypeCombo struct {
	types []Type
}

// NewTypeCombo validates typs and collapses a repeated type into one. More
// than two types are rejected even when some of them repeat.
func NewTypeCombo(typs ...Type) (TypeCombo, error) {
	if len(typs) > 2 {
		return TypeCombo{}, fmt.Errorf("got %d types: %w", len(typs), ErrTypeComboSize)
	}

	combo := TypeCombo{types: make([]Type, 0, len(typs))}
	for _, typ := range typs {
		err := typ.validate()
		if err != nil {
			return TypeCombo{}, fmt.Errorf("invalid type in combination: %w", err)
		}
		if combo.Has(typ) {
			continue
		}
		combo.types = append(combo.types, typ)
	}

	return combo, nil
}

func (m *Model) ParseTypeCombo(names ...string) (TypeCombo, error) {
	if len(names) > 2 {
		return TypeCombo{}, fmt.Errorf("got %d types: %w", len(names), ErrTypeComboSize)
	}

	typs := make([]Type, len(names))
	for i, name := range names {
		typ, err := m.TypeByName(name)
		if err != nil {
			return TypeCombo{}, fmt.Errorf("could not parse type combination: %w", err)
		}
		typs[i] = typ
	}

	return NewTypeCombo(typs...)
}

// Types returns a copy of the member types in the order they were supplied.
func (combo TypeCombo) Types() []Type {
	typs := make([]Type, len(combo.types))
	copy(typs, combo.types)
	return typs
}

func (combo TypeCombo) Len() int {
	return len(combo.types)
}

func (combo TypeCombo) IsEmpty() bool {
	return len(combo.types) == 0
}

func (combo TypeCombo) Has(typ Type) bool {
	for _, t := range combo.types {
		if t == typ {
			return true
		}
	}
	return false
}

func (combo TypeCombo) String() string {
	names := make([]string, len(combo.types))
	for i, typ := range combo.types {
		names[i] = typ.String()
	}
	return strings.Join(names, "/")
}
