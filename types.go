package pokedex

import (
	"io/fs"

	"github.com/louisbranch/pokedex/veekun"
)

// Type is an elemental type of moves and Pokémon.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFighting
	TypeFlying
	TypePoison
	TypeGround
	TypeRock
	TypeBug
	TypeGhost
	TypeSteel
	TypeFire
	TypeWater
	TypeGrass
	TypeElectric
	TypePsychic
	TypeIce
	TypeDragon
	TypeDark
)

// TypeCount is the number of elemental types in the data set.
const TypeCount = 17

var typeNames = [TypeCount]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug",
	"Ghost", "Steel", "Fire", "Water", "Grass", "Electric", "Psychic",
	"Ice", "Dragon", "Dark",
}

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return "Type(?)"
	}
	return typeNames[t]
}

func typeFromVeekun(v uint64) (Type, bool) {
	if v < 1 || v > TypeCount {
		return 0, false
	}
	return Type(v - 1), true
}

func typeField(rec veekun.Record, index int) (Type, error) {
	return enumField(rec, index, "type", typeFromVeekun)
}

// Efficacy is the effectiveness of an attacking type against a defending
// type.
type Efficacy int8

const (
	// EfficacyNot means the attack has no effect.
	EfficacyNot Efficacy = iota - 2
	// EfficacyNotVery means the attack does half damage.
	EfficacyNotVery
	// EfficacyRegular means the attack does regular damage.
	EfficacyRegular
	// EfficacySuper means the attack does double damage.
	EfficacySuper
)

func (e Efficacy) String() string {
	switch e {
	case EfficacyNot:
		return "Not"
	case EfficacyNotVery:
		return "NotVery"
	case EfficacyRegular:
		return "Regular"
	case EfficacySuper:
		return "Super"
	}
	return "Efficacy(?)"
}

// Modifier returns the damage multiplier the efficacy encodes.
func (e Efficacy) Modifier() float64 {
	switch e {
	case EfficacyNot:
		return 0.0
	case EfficacyNotVery:
		return 0.5
	case EfficacySuper:
		return 2.0
	default:
		return 1.0
	}
}

// The veekun tables encode efficacy as a damage factor percentage.
func efficacyFromVeekun(v uint64) (Efficacy, bool) {
	switch v {
	case 0:
		return EfficacyNot, true
	case 50:
		return EfficacyNotVery, true
	case 100:
		return EfficacyRegular, true
	case 200:
		return EfficacySuper, true
	}
	return 0, false
}

// EfficacyTable holds the effectiveness of every attacking type against
// every defending type.
type EfficacyTable struct {
	table [TypeCount][TypeCount]Efficacy
}

// Efficacy returns the effectiveness of the damage type against the target
// type.
func (t *EfficacyTable) Efficacy(damage, target Type) Efficacy {
	return t.table[damage][target]
}

// Modifier returns the combined damage multiplier of the damage type
// against a defender with the given types.
func (t *EfficacyTable) Modifier(damage Type, targets OneOrTwo[Type]) float64 {
	modifier := t.Efficacy(damage, targets.First()).Modifier()
	if second, ok := targets.Second(); ok {
		modifier *= t.Efficacy(damage, second).Modifier()
	}
	return modifier
}

// loadEfficacy fills the table from type_efficacy.csv. Pairs absent from
// the table keep regular effectiveness.
func loadEfficacy(fsys fs.FS) (EfficacyTable, error) {
	var t EfficacyTable
	err := veekun.EachRecord(fsys, veekun.TypeEfficacyFile, func(rec veekun.Record) error {
		damage, err := typeField(rec, 0)
		if err != nil {
			return err
		}
		target, err := typeField(rec, 1)
		if err != nil {
			return err
		}
		factor, err := rec.Uint(2)
		if err != nil {
			return err
		}
		efficacy, ok := efficacyFromVeekun(factor)
		if !ok {
			return rec.Errorf(2, "invalid damage factor: %d", factor)
		}
		t.table[damage][target] = efficacy
		return nil
	})
	return t, err
}
