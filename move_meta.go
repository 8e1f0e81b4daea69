package pokedex

import (
	"io/fs"

	"github.com/louisbranch/pokedex/veekun"
)

// MoveCategory is the broad shape of what a move does.
type MoveCategory uint8

const (
	// MoveCategoryDamage inflicts damage, possibly with a minor extra.
	MoveCategoryDamage MoveCategory = iota
	// MoveCategoryAilment inflicts an ailment without damage.
	MoveCategoryAilment
	// MoveCategoryNetGoodStats adjusts stats in the user's favor.
	MoveCategoryNetGoodStats
	// MoveCategoryHeal heals the user without damage.
	MoveCategoryHeal
	// MoveCategoryDamageAilment inflicts damage and can inflict an ailment.
	MoveCategoryDamageAilment
	// MoveCategorySwagger confuses the target and raises one of its stats.
	MoveCategorySwagger
	// MoveCategoryDamageLower inflicts damage and lowers the target's
	// stats.
	MoveCategoryDamageLower
	// MoveCategoryDamageRaise inflicts damage and raises the user's stats.
	MoveCategoryDamageRaise
	// MoveCategoryDamageHeal inflicts damage and heals the user half the
	// damage inflicted.
	MoveCategoryDamageHeal
	// MoveCategoryOneHitKO knocks the target out in one hit.
	MoveCategoryOneHitKO
	// MoveCategoryWholeFieldEffect affects the entire field.
	MoveCategoryWholeFieldEffect
	// MoveCategoryFieldEffect affects half of the field.
	MoveCategoryFieldEffect
	// MoveCategoryForceSwitch forces the target to switch out.
	MoveCategoryForceSwitch
	// MoveCategoryUnique fits none of the other categories.
	MoveCategoryUnique
)

var moveCategoryNames = [...]string{
	"Damage", "Ailment", "NetGoodStats", "Heal", "DamageAilment",
	"Swagger", "DamageLower", "DamageRaise", "DamageHeal", "OneHitKO",
	"WholeFieldEffect", "FieldEffect", "ForceSwitch", "Unique",
}

func (c MoveCategory) String() string {
	if int(c) >= len(moveCategoryNames) {
		return "MoveCategory(?)"
	}
	return moveCategoryNames[c]
}

func moveCategoryFromVeekun(v uint64) (MoveCategory, bool) {
	if v >= uint64(len(moveCategoryNames)) {
		return 0, false
	}
	return MoveCategory(v), true
}

// Ailment is a status condition caused by a move. The identifier space has
// gaps, and AilmentUnknown marks the handful of moves whose condition the
// data does not classify.
type Ailment int8

const (
	AilmentUnknown Ailment = iota - 1
	AilmentNone
	AilmentParalysis
	AilmentSleep
	AilmentFreeze
	AilmentBurn
	AilmentPoison
	AilmentConfusion
	AilmentInfatuation
	AilmentTrap
	AilmentNightmare
)

const (
	AilmentTorment Ailment = iota + 12
	AilmentDisable
	AilmentYawn
	AilmentHealBlock
)

const (
	AilmentNoTypeImmunity Ailment = iota + 17
	AilmentLeechSeed
	AilmentEmbargo
	AilmentPerishSong
	AilmentIngrain
)

var ailmentNames = map[Ailment]string{
	AilmentUnknown:        "Unknown",
	AilmentNone:           "None",
	AilmentParalysis:      "Paralysis",
	AilmentSleep:          "Sleep",
	AilmentFreeze:         "Freeze",
	AilmentBurn:           "Burn",
	AilmentPoison:         "Poison",
	AilmentConfusion:      "Confusion",
	AilmentInfatuation:    "Infatuation",
	AilmentTrap:           "Trap",
	AilmentNightmare:      "Nightmare",
	AilmentTorment:        "Torment",
	AilmentDisable:        "Disable",
	AilmentYawn:           "Yawn",
	AilmentHealBlock:      "HealBlock",
	AilmentNoTypeImmunity: "NoTypeImmunity",
	AilmentLeechSeed:      "LeechSeed",
	AilmentEmbargo:        "Embargo",
	AilmentPerishSong:     "PerishSong",
	AilmentIngrain:        "Ingrain",
}

func (a Ailment) String() string {
	if name, ok := ailmentNames[a]; ok {
		return name
	}
	return "Ailment(?)"
}

// Volatile reports whether the ailment wears off when the Pokémon switches
// out. Only paralysis, sleep, freeze, burn, and poison persist.
func (a Ailment) Volatile() bool {
	return a < AilmentParalysis || a > AilmentPoison
}

func ailmentFromVeekun(v int64) (Ailment, bool) {
	a := Ailment(v)
	if int64(a) != v {
		return 0, false
	}
	_, ok := ailmentNames[a]
	return a, ok
}

// MoveFlags are miscellaneous bitflags for moves.
type MoveFlags uint16

const (
	// MoveFlagContact makes contact with the target.
	MoveFlagContact MoveFlags = 1 << iota
	// MoveFlagCharge requires a turn to charge before attacking.
	MoveFlagCharge
	// MoveFlagRecharge requires a turn to recharge after attacking.
	MoveFlagRecharge
	// MoveFlagProtect is blocked by Detect and Protect.
	MoveFlagProtect
	// MoveFlagReflectable is reflected by Magic Coat and Magic Bounce.
	MoveFlagReflectable
	// MoveFlagSnatch is stolen by Snatch.
	MoveFlagSnatch
	// MoveFlagMirror is copied by Mirror Move.
	MoveFlagMirror
	// MoveFlagPunch is boosted by Iron Fist.
	MoveFlagPunch
	// MoveFlagSound is blocked by Soundproof.
	MoveFlagSound
	// MoveFlagGravity is unusable under Gravity.
	MoveFlagGravity
	// MoveFlagDefrost can be used while frozen, thawing the user.
	MoveFlagDefrost
	// MoveFlagDistance reaches any Pokémon in triple battles.
	MoveFlagDistance
	// MoveFlagHeal is blocked by Heal Block.
	MoveFlagHeal
	// MoveFlagAuthentic ignores the target's Substitute.
	MoveFlagAuthentic
)

const moveFlagCount = 14

// Has reports whether every given flag is set.
func (f MoveFlags) Has(flags MoveFlags) bool { return f&flags == flags }

func moveFlagFromVeekun(v uint64) (MoveFlags, bool) {
	if v < 1 || v > moveFlagCount {
		return 0, false
	}
	return 1 << (v - 1), true
}

// Span is an inclusive range of hit or turn counts. The zero Span means
// the move has no multi-hit or multi-turn behavior.
type Span struct {
	Min uint8
	Max uint8
}

// StatChanges holds the stage change a move applies to each changeable
// stat, indexed by Stat.
type StatChanges [ChangeableStats]int8

// Change returns the stage change for the stat. HP is never changed by a
// move.
func (s StatChanges) Change(stat Stat) int8 {
	if stat < StatAttack || stat > StatEvasion {
		return 0
	}
	return s[stat]
}

// Meta is the secondary data of a move.
type Meta struct {
	Category MoveCategory
	Ailment  Ailment
	// Hits is the number of times the move hits in one turn, when it hits
	// more than once.
	Hits Span
	// Turns is how long the move's effect lasts, when it spans turns.
	Turns Span
	// Drain is the percent of inflicted damage absorbed by the user
	// (positive) or taken as recoil (negative).
	Drain int8
	// Healing is the percent of max HP recovered (positive) or lost
	// (negative).
	Healing int8
	// CriticalRate is the increase of the critical-hit rate.
	CriticalRate int8
	// AilmentChance is the percent chance of inflicting the ailment, or 0
	// when the ailment is guaranteed or absent.
	AilmentChance uint8
	// FlinchChance is the percent chance of causing the target to flinch.
	FlinchChance uint8
	// StatChance is the percent chance of the stat changes applying, or 0
	// when they are guaranteed or absent.
	StatChance  uint8
	StatChanges StatChanges
	Flags       MoveFlags
}

// defaultMeta is the meta carried by a move that has no meta row.
func defaultMeta() Meta {
	return Meta{Category: MoveCategoryUnique, Ailment: AilmentUnknown}
}

func spanFields(rec veekun.Record, minIndex, maxIndex int) (Span, error) {
	min, minOK, err := optionalUint8Field(rec, minIndex)
	if err != nil {
		return Span{}, err
	}
	max, maxOK, err := optionalUint8Field(rec, maxIndex)
	if err != nil {
		return Span{}, err
	}
	if !minOK || !maxOK {
		return Span{}, nil
	}
	return Span{Min: min, Max: max}, nil
}

func (t *MoveTable) readMeta(fsys fs.FS) error {
	return veekun.EachRecord(fsys, veekun.MoveMetaFile, func(rec veekun.Record) error {
		id, skip, err := moveIDField(rec, 0)
		if err != nil || skip {
			return err
		}
		m, ok := t.byID[id]
		if !ok {
			return rec.Errorf(0, "unknown move: %d", id)
		}
		category, err := enumField(rec, 1, "move category", moveCategoryFromVeekun)
		if err != nil {
			return err
		}
		rawAilment, err := rec.Int(2)
		if err != nil {
			return err
		}
		ailment, ok := ailmentFromVeekun(rawAilment)
		if !ok {
			return rec.Errorf(2, "invalid ailment: %d", rawAilment)
		}
		hits, err := spanFields(rec, 3, 4)
		if err != nil {
			return err
		}
		turns, err := spanFields(rec, 5, 6)
		if err != nil {
			return err
		}
		drain, err := int8Field(rec, 7)
		if err != nil {
			return err
		}
		healing, err := int8Field(rec, 8)
		if err != nil {
			return err
		}
		critRate, err := int8Field(rec, 9)
		if err != nil {
			return err
		}
		ailmentChance, err := uint8Field(rec, 10)
		if err != nil {
			return err
		}
		flinchChance, err := uint8Field(rec, 11)
		if err != nil {
			return err
		}
		statChance, err := uint8Field(rec, 12)
		if err != nil {
			return err
		}
		m.Meta = Meta{
			Category:      category,
			Ailment:       ailment,
			Hits:          hits,
			Turns:         turns,
			Drain:         drain,
			Healing:       healing,
			CriticalRate:  critRate,
			AilmentChance: ailmentChance,
			FlinchChance:  flinchChance,
			StatChance:    statChance,
		}
		t.byID[id] = m
		return nil
	})
}

func (t *MoveTable) readFlags(fsys fs.FS) error {
	return veekun.EachRecord(fsys, veekun.MoveFlagMapFile, func(rec veekun.Record) error {
		id, skip, err := moveIDField(rec, 0)
		if err != nil || skip {
			return err
		}
		m, ok := t.byID[id]
		if !ok {
			return rec.Errorf(0, "unknown move: %d", id)
		}
		flag, err := enumField(rec, 1, "move flag", moveFlagFromVeekun)
		if err != nil {
			return err
		}
		m.Meta.Flags |= flag
		t.byID[id] = m
		return nil
	})
}

func (t *MoveTable) readStatChanges(fsys fs.FS) error {
	return veekun.EachRecord(fsys, veekun.MoveStatChangesFile, func(rec veekun.Record) error {
		id, skip, err := moveIDField(rec, 0)
		if err != nil || skip {
			return err
		}
		m, ok := t.byID[id]
		if !ok {
			return rec.Errorf(0, "unknown move: %d", id)
		}
		stat, err := statField(rec, 1)
		if err != nil {
			return err
		}
		if stat < StatAttack {
			return rec.Errorf(1, "stat cannot be changed by a move: %s", stat)
		}
		change, err := int8Field(rec, 2)
		if err != nil {
			return err
		}
		m.Meta.StatChanges[stat] = change
		t.byID[id] = m
		return nil
	})
}
