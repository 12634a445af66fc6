package model

// chart is the dense attacker by defender table, indexed by enumeration
// position.
type chart [NumTypes][NumTypes]EfficacyLevel

// nonNeutral lists every attacker/defender pair whose level differs from
// NormalEffective. Missing pairs are neutral.
var nonNeutral = map[Type]map[Type]EfficacyLevel{
	TypeNormal: {
		TypeRock:  NotVeryEffective,
		TypeGhost: Immune,
		TypeSteel: NotVeryEffective,
	},
	TypeFire: {
		TypeFire:   NotVeryEffective,
		TypeWater:  NotVeryEffective,
		TypeGrass:  SuperEffective,
		TypeIce:    SuperEffective,
		TypeBug:    SuperEffective,
		TypeRock:   NotVeryEffective,
		TypeDragon: NotVeryEffective,
		TypeSteel:  SuperEffective,
	},
	TypeWater: {
		TypeFire:   SuperEffective,
		TypeWater:  NotVeryEffective,
		TypeGrass:  NotVeryEffective,
		TypeGround: SuperEffective,
		TypeRock:   SuperEffective,
		TypeDragon: NotVeryEffective,
	},
	TypeElectric: {
		TypeWater:    SuperEffective,
		TypeElectric: NotVeryEffective,
		TypeGrass:    NotVeryEffective,
		TypeGround:   Immune,
		TypeFlying:   SuperEffective,
		TypeDragon:   NotVeryEffective,
	},
	TypeGrass: {
		TypeFire:   NotVeryEffective,
		TypeWater:  SuperEffective,
		TypeGrass:  NotVeryEffective,
		TypePoison: NotVeryEffective,
		TypeGround: SuperEffective,
		TypeFlying: NotVeryEffective,
		TypeBug:    NotVeryEffective,
		TypeRock:   SuperEffective,
		TypeDragon: NotVeryEffective,
		TypeSteel:  NotVeryEffective,
	},
	TypeIce: {
		TypeFire:   NotVeryEffective,
		TypeWater:  NotVeryEffective,
		TypeGrass:  SuperEffective,
		TypeIce:    NotVeryEffective,
		TypeGround: SuperEffective,
		TypeFlying: SuperEffective,
		TypeDragon: SuperEffective,
		TypeSteel:  NotVeryEffective,
	},
	TypeFighting: {
		TypeNormal:  SuperEffective,
		TypeIce:     SuperEffective,
		TypePoison:  NotVeryEffective,
		TypeFlying:  NotVeryEffective,
		TypePsychic: NotVeryEffective,
		TypeBug:     NotVeryEffective,
		TypeRock:    SuperEffective,
		TypeGhost:   Immune,
		TypeDark:    SuperEffective,
		TypeSteel:   SuperEffective,
		TypeFairy:   NotVeryEffective,
	},
	TypePoison: {
		TypeGrass:  SuperEffective,
		TypePoison: NotVeryEffective,
		TypeGround: NotVeryEffective,
		TypeRock:   NotVeryEffective,
		TypeGhost:  NotVeryEffective,
		TypeSteel:  Immune,
		TypeFairy:  SuperEffective,
	},
	TypeGround: {
		TypeFire:     SuperEffective,
		TypeElectric: SuperEffective,
		TypeGrass:    NotVeryEffective,
		TypePoison:   SuperEffective,
		TypeFlying:   Immune,
		TypeBug:      NotVeryEffective,
		TypeRock:     SuperEffective,
		TypeSteel:    SuperEffective,
	},
	TypeFlying: {
		TypeElectric: NotVeryEffective,
		TypeGrass:    SuperEffective,
		TypeFighting: SuperEffective,
		TypeBug:      SuperEffective,
		TypeRock:     NotVeryEffective,
		TypeSteel:    NotVeryEffective,
	},
	TypePsychic: {
		TypeFighting: SuperEffective,
		TypePoison:   SuperEffective,
		TypePsychic:  NotVeryEffective,
		TypeDark:     Immune,
		TypeSteel:    NotVeryEffective,
	},
	TypeBug: {
		TypeFire:     NotVeryEffective,
		TypeGrass:    SuperEffective,
		TypeFighting: NotVeryEffective,
		TypePoison:   NotVeryEffective,
		TypeFlying:   NotVeryEffective,
		TypePsychic:  SuperEffective,
		TypeGhost:    NotVeryEffective,
		TypeDark:     SuperEffective,
		TypeSteel:    NotVeryEffective,
		TypeFairy:    NotVeryEffective,
	},
	TypeRock: {
		TypeFire:     SuperEffective,
		TypeIce:      SuperEffective,
		TypeFighting: NotVeryEffective,
		TypeGround:   NotVeryEffective,
		TypeFlying:   SuperEffective,
		TypeBug:      SuperEffective,
		TypeSteel:    NotVeryEffective,
	},
	TypeGhost: {
		TypeNormal:  Immune,
		TypePsychic: SuperEffective,
		TypeGhost:   SuperEffective,
		TypeDark:    NotVeryEffective,
	},
	TypeDragon: {
		TypeDragon: SuperEffective,
		TypeSteel:  NotVeryEffective,
		TypeFairy:  Immune,
	},
	TypeDark: {
		TypeFighting: NotVeryEffective,
		TypePsychic:  SuperEffective,
		TypeGhost:    SuperEffective,
		TypeDark:     NotVeryEffective,
		TypeFairy:    NotVeryEffective,
	},
	TypeSteel: {
		TypeFire:     NotVeryEffective,
		TypeWater:    NotVeryEffective,
		TypeElectric: NotVeryEffective,
		TypeIce:      SuperEffective,
		TypeRock:     SuperEffective,
		TypeSteel:    NotVeryEffective,
		TypeFairy:    SuperEffective,
	},
	TypeFairy: {
		TypeFire:     NotVeryEffective,
		TypeFighting: SuperEffective,
		TypePoison:   NotVeryEffective,
		TypeDragon:   SuperEffective,
		TypeDark:     SuperEffective,
		TypeSteel:    NotVeryEffective,
	},
}

var defaultChart = newChart(nonNeutral)

func newChart(entries map[Type]map[Type]EfficacyLevel) *chart {
	var c chart
	for atk := range c {
		for def := range c[atk] {
			c[atk][def] = NormalEffective
		}
	}

	for atk, row := range entries {
		for def, lvl := range row {
			c[atk][def] = lvl
		}
	}

	return &c
}
