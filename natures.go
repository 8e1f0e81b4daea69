package pokedex

import (
	"io/fs"
	"math/rand"

	"github.com/louisbranch/pokedex/veekun"
)

// Stat identifies one of the eight battle stats.
type Stat int8

const (
	StatHP Stat = iota - 1
	StatAttack
	StatDefense
	StatSpeed
	StatSpecialAttack
	StatSpecialDefense
	StatAccuracy
	StatEvasion
)

// PermanentStats counts the stats that exist outside battle, everything but
// accuracy and evasion.
const PermanentStats = 6

// ChangeableStats counts the stats that can be staged in battle, everything
// but HP.
const ChangeableStats = 7

var statNames = [ChangeableStats + 1]string{
	"HP", "Attack", "Defense", "Speed",
	"SpecialAttack", "SpecialDefense", "Accuracy", "Evasion",
}

func (s Stat) String() string {
	i := int(s) + 1
	if i < 0 || i >= len(statNames) {
		return "Stat(?)"
	}
	return statNames[i]
}

// The veekun stat order differs from the battle order used here.
var statFromVeekunTable = [8]Stat{
	StatHP, StatAttack, StatDefense, StatSpecialAttack,
	StatSpecialDefense, StatSpeed, StatAccuracy, StatEvasion,
}

func statFromVeekun(v uint64) (Stat, bool) {
	if v < 1 || v > 8 {
		return 0, false
	}
	return statFromVeekunTable[v-1], true
}

func statField(rec veekun.Record, index int) (Stat, error) {
	return enumField(rec, index, "stat", statFromVeekun)
}

// Nature of a Pokémon, which skews stat growth and taste preferences.
//
// Natures are ordered as the games order them: five groups of five, where
// the group selects the increased stat and the position within the group
// selects the decreased stat. A nature that would increase and decrease the
// same stat is neutral.
type Nature uint8

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky
)

// NatureCount is the number of natures.
const NatureCount = 25

var natureNames = [NatureCount]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

func (n Nature) String() string {
	if int(n) >= len(natureNames) {
		return "Nature(?)"
	}
	return natureNames[n]
}

// The veekun tables number natures in a different order than the games.
var natureFromVeekunTable = [NatureCount]Nature{
	NatureHardy, NatureBold, NatureModest, NatureCalm, NatureTimid,
	NatureLonely, NatureDocile, NatureMild, NatureGentle, NatureHasty,
	NatureAdamant, NatureImpish, NatureBashful, NatureCareful, NatureRash,
	NatureJolly, NatureNaughty, NatureLax, NatureQuirky, NatureNaive,
	NatureBrave, NatureRelaxed, NatureQuiet, NatureSassy, NatureSerious,
}

func natureFromVeekun(v uint64) (Nature, bool) {
	if v < 1 || v > NatureCount {
		return 0, false
	}
	return natureFromVeekunTable[v-1], true
}

// Neutral reports whether the nature has no effect on stats.
func (n Nature) Neutral() bool {
	return n%6 == 0
}

// Increased returns the stat the nature raises, if any.
func (n Nature) Increased() (Stat, bool) {
	if n.Neutral() {
		return 0, false
	}
	return Stat(n / 5), true
}

// Decreased returns the stat the nature lowers, if any.
func (n Nature) Decreased() (Stat, bool) {
	if n.Neutral() {
		return 0, false
	}
	return Stat(n % 5), true
}

// LikedFlavor returns the flavor a Pokémon of this nature likes, if any.
// The liked flavor pairs with the increased stat.
func (n Nature) LikedFlavor() (Flavor, bool) {
	if n.Neutral() {
		return 0, false
	}
	return Flavor(n / 5), true
}

// DislikedFlavor returns the flavor a Pokémon of this nature dislikes, if
// any. The disliked flavor pairs with the decreased stat.
func (n Nature) DislikedFlavor() (Flavor, bool) {
	if n.Neutral() {
		return 0, false
	}
	return Flavor(n % 5), true
}

// BattleStyle is the kind of move a Pokémon favors in the Battle Palace.
type BattleStyle uint8

const (
	StyleAttack BattleStyle = iota
	StyleDefense
	StyleSupport
)

func (s BattleStyle) String() string {
	switch s {
	case StyleAttack:
		return "Attack"
	case StyleDefense:
		return "Defense"
	case StyleSupport:
		return "Support"
	}
	return "BattleStyle(?)"
}

func battleStyleFromVeekun(v uint64) (BattleStyle, bool) {
	if v < 1 || v > 3 {
		return 0, false
	}
	return BattleStyle(v - 1), true
}

// HalfPalaceTable holds Battle Palace style preferences for one HP range.
// The support preference is implied: the three preferences of a nature sum
// to 100.
type HalfPalaceTable struct {
	attack  [NatureCount]uint8
	defense [NatureCount]uint8
}

// Preference returns the attack, defense, and support percentages for the
// nature.
func (t *HalfPalaceTable) Preference(nature Nature) (attack, defense, support uint8) {
	a := t.attack[nature]
	d := t.defense[nature]
	return a, d, 100 - a - d
}

// PickStyle draws a battle style for the nature using rng.
func (t *HalfPalaceTable) PickStyle(rng *rand.Rand, nature Nature) BattleStyle {
	return t.styleAt(uint8(rng.Intn(100)), nature)
}

func (t *HalfPalaceTable) styleAt(roll uint8, nature Nature) BattleStyle {
	if roll < t.attack[nature] {
		return StyleAttack
	}
	if roll < t.attack[nature]+t.defense[nature] {
		return StyleDefense
	}
	return StyleSupport
}

// PalaceTable holds Battle Palace style preferences above and below half
// HP.
type PalaceTable struct {
	Low  HalfPalaceTable
	High HalfPalaceTable
}

// PickStyle draws a battle style for the nature, using the low preferences
// when the Pokémon is below half HP.
func (t *PalaceTable) PickStyle(rng *rand.Rand, nature Nature, belowHalfHP bool) BattleStyle {
	if belowHalfHP {
		return t.Low.PickStyle(rng, nature)
	}
	return t.High.PickStyle(rng, nature)
}

// loadPalace reads nature_battle_style_preferences.csv. The support rows
// close out each nature, so the sum check runs when they arrive.
func loadPalace(fsys fs.FS) (PalaceTable, error) {
	var t PalaceTable
	err := veekun.EachRecord(fsys, veekun.PalacePreferencesFile, func(rec veekun.Record) error {
		nature, err := enumField(rec, 0, "nature", natureFromVeekun)
		if err != nil {
			return err
		}
		style, err := enumField(rec, 1, "battle style", battleStyleFromVeekun)
		if err != nil {
			return err
		}
		low, err := rec.Uint(2)
		if err != nil {
			return err
		}
		high, err := rec.Uint(3)
		if err != nil {
			return err
		}
		if low > 100 || high > 100 {
			return rec.Errorf(2, "preference out of range: %d/%d", low, high)
		}
		switch style {
		case StyleAttack:
			t.Low.attack[nature] = uint8(low)
			t.High.attack[nature] = uint8(high)
		case StyleDefense:
			t.Low.defense[nature] = uint8(low)
			t.High.defense[nature] = uint8(high)
		case StyleSupport:
			if int(t.Low.attack[nature])+int(t.Low.defense[nature])+int(low) != 100 {
				return rec.Errorf(2, "preferences must sum to 100")
			}
			if int(t.High.attack[nature])+int(t.High.defense[nature])+int(high) != 100 {
				return rec.Errorf(3, "preferences must sum to 100")
			}
		}
		return nil
	})
	return t, err
}
