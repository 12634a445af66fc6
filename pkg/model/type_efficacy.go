package model

import (
	"fmt"
	"math"
	"strconv"
)

// EfficacyLevel is a damage factor expressed in percent, so that products of
// the half and double multipliers stay exact.
type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

// Combine composes two levels multiplicatively.
func (lvl EfficacyLevel) Combine(other EfficacyLevel) EfficacyLevel {
	return lvl * other / NormalEffective
}

func (lvl EfficacyLevel) Multiplier() float64 {
	return float64(lvl) / float64(NormalEffective)
}

func (lvl EfficacyLevel) String() string {
	return strconv.FormatFloat(lvl.Multiplier(), 'g', -1, 64) + "x"
}

// MarshalJSON encodes the level as its plain multiplier, e.g. 0.5 or 4.
func (lvl EfficacyLevel) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, lvl.Multiplier(), 'g', -1, 64), nil
}

func (lvl *EfficacyLevel) UnmarshalJSON(data []byte) error {
	m, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("efficacy level %s is not a multiplier: %w", data, err)
	}
	*lvl = EfficacyLevel(math.Round(m * float64(NormalEffective)))
	return nil
}

// TypeEfficacy pairs a type with the level it deals or receives.
type TypeEfficacy struct {
	Type  Type          `json:"category"`
	Level EfficacyLevel `json:"multiplier"`
}

// OpposingEfficacy is the level a single opposing type deals to a candidate
// defending type.
type OpposingEfficacy struct {
	OpposingType Type          `json:"opponentCategory"`
	Level        EfficacyLevel `json:"multiplier"`
}

// DefensiveMatchup is a candidate defending type together with what each of
// the opponent's types does to it, in opponent order.
type DefensiveMatchup struct {
	Type       Type               `json:"category"`
	Efficacies []OpposingEfficacy `json:"perOpponentMultipliers"`
}

type AttackOptions struct {
	SuperEffective   []TypeEfficacy `json:"superEffective"`
	NotVeryEffective []TypeEfficacy `json:"notVeryEffective"`
}

type DefenseOptions struct {
	Resistant  []DefensiveMatchup `json:"resistant"`
	Vulnerable []DefensiveMatchup `json:"vulnerable"`
}
