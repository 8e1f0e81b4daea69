package pokedex

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/louisbranch/pokedex/veekun"
)

// DamageClass splits moves into status, physical, and special.
type DamageClass uint8

const (
	DamageClassNonDamaging DamageClass = iota
	DamageClassPhysical
	DamageClassSpecial
)

func (c DamageClass) String() string {
	switch c {
	case DamageClassNonDamaging:
		return "NonDamaging"
	case DamageClassPhysical:
		return "Physical"
	case DamageClassSpecial:
		return "Special"
	}
	return "DamageClass(?)"
}

func damageClassFromVeekun(v uint64) (DamageClass, bool) {
	if v < 1 || v > 3 {
		return 0, false
	}
	return DamageClass(v - 1), true
}

// LearnMethod is how a Pokémon comes to know a move.
type LearnMethod uint8

const (
	// LearnLevelUp is learned at a certain level.
	LearnLevelUp LearnMethod = iota
	// LearnEgg is known by newly hatched Pokémon when the father knew it.
	LearnEgg
	// LearnTutor is taught by a move tutor.
	LearnTutor
	// LearnMachine is taught using a TM or HM.
	LearnMachine
	LearnStadiumSurfingPikachu
	// LearnLightBallEgg is known by a newly hatched Pichu when the mother
	// held a Light Ball.
	LearnLightBallEgg
	LearnColosseumPurification
	LearnXDShadow
	LearnXDPurification
	// LearnFormChange appears via form change.
	LearnFormChange
)

var learnMethodNames = [...]string{
	"LevelUp", "Egg", "Tutor", "Machine", "StadiumSurfingPikachu",
	"LightBallEgg", "ColosseumPurification", "XDShadow", "XDPurification",
	"FormChange",
}

func (m LearnMethod) String() string {
	if int(m) >= len(learnMethodNames) {
		return "LearnMethod(?)"
	}
	return learnMethodNames[m]
}

func learnMethodFromVeekun(v uint64) (LearnMethod, bool) {
	if v < 1 || v > uint64(len(learnMethodNames)) {
		return 0, false
	}
	return LearnMethod(v - 1), true
}

// Target is the targeting mechanism of a move.
type Target uint8

const (
	// TargetSpecificMove depends on battle state (Counter, Curse, Mirror
	// Coat, and Metal Burst).
	TargetSpecificMove Target = iota
	// TargetSelectedPokemonReuseStolen is one selected Pokémon other than
	// the user; stolen moves reuse the same target.
	TargetSelectedPokemonReuseStolen
	// TargetAlly is the user's ally.
	TargetAlly
	// TargetUsersField is the user's side of the field.
	TargetUsersField
	// TargetUserOrAlly is the selected user or ally (Acupressure).
	TargetUserOrAlly
	// TargetOpponentsField is the opposing side of the field.
	TargetOpponentsField
	// TargetUser is the user itself.
	TargetUser
	// TargetRandomOpponent is one random opposing Pokémon.
	TargetRandomOpponent
	// TargetAllOtherPokemon is every Pokémon other than the user.
	TargetAllOtherPokemon
	// TargetSelectedPokemon is one selected Pokémon other than the user.
	TargetSelectedPokemon
	// TargetAllOpponents is every opposing Pokémon.
	TargetAllOpponents
	// TargetEntireField is the whole field.
	TargetEntireField
)

var targetNames = [...]string{
	"SpecificMove", "SelectedPokemonReuseStolen", "Ally", "UsersField",
	"UserOrAlly", "OpponentsField", "User", "RandomOpponent",
	"AllOtherPokemon", "SelectedPokemon", "AllOpponents", "EntireField",
}

func (t Target) String() string {
	if int(t) >= len(targetNames) {
		return "Target(?)"
	}
	return targetNames[t]
}

func targetFromVeekun(v uint64) (Target, bool) {
	if v < 1 || v > uint64(len(targetNames)) {
		return 0, false
	}
	return Target(v - 1), true
}

// MoveID is the table identifier of a move. Zero is not a valid id.
type MoveID uint16

// Move rows numbered 10000 and up belong to the GameCube side games and
// are skipped when loading.
const sideSeriesMoveID = 10000

// A Move is the primary action a Pokémon can take on its turn.
type Move struct {
	ID         MoveID
	Name       string
	Generation Generation
	Type       Type
	Power      uint8
	PP         uint8
	// Accuracy is the percent chance to hit, or 0 when the move cannot
	// miss.
	Accuracy uint8
	Priority int8
	Target   Target
	Class    DamageClass
	Effect   Effect
	// EffectChance is the percent chance of the secondary effect, or 0
	// when the effect has no chance attached.
	EffectChance uint8
	Meta         Meta
}

// AlwaysHits reports whether the move bypasses accuracy checks.
func (m Move) AlwaysHits() bool { return m.Accuracy == 0 }

// MoveTable holds every move keyed by id.
type MoveTable struct {
	byID   map[MoveID]Move
	byName map[string]MoveID
	ids    []MoveID
}

// ByID returns the move with the given id.
func (t *MoveTable) ByID(id MoveID) (Move, bool) {
	m, ok := t.byID[id]
	return m, ok
}

// ByName returns the move with the given name. Case, spaces, and hyphens
// are ignored, so "thunder-punch" and "ThunderPunch" find the same move.
func (t *MoveTable) ByName(name string) (Move, bool) {
	id, ok := t.byName[normalizeName(name)]
	if !ok {
		return Move{}, false
	}
	return t.byID[id], true
}

// IDs returns the move ids in ascending order.
func (t *MoveTable) IDs() []MoveID {
	ids := make([]MoveID, len(t.ids))
	copy(ids, t.ids)
	return ids
}

// Len returns the number of moves.
func (t *MoveTable) Len() int { return len(t.byID) }

// normalizeName lowercases a name and strips everything but letters and
// digits, so display names, identifiers, and pascal-cased names all map to
// the same key.
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		}
	}
	return b.String()
}

func loadMoves(fsys fs.FS) (*MoveTable, error) {
	t := &MoveTable{
		byID:   make(map[MoveID]Move),
		byName: make(map[string]MoveID),
	}
	if err := t.readMoves(fsys); err != nil {
		return nil, err
	}
	if err := t.readMeta(fsys); err != nil {
		return nil, err
	}
	if err := t.readFlags(fsys); err != nil {
		return nil, err
	}
	if err := t.readStatChanges(fsys); err != nil {
		return nil, err
	}
	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
	return t, nil
}

func (t *MoveTable) readMoves(fsys fs.FS) error {
	return veekun.EachRecord(fsys, veekun.MovesFile, func(rec veekun.Record) error {
		raw, err := rec.Uint(0)
		if err != nil {
			return err
		}
		if raw >= sideSeriesMoveID {
			return nil
		}
		if raw == 0 {
			return rec.Errorf(0, "invalid move: %d", raw)
		}
		identifier, err := rec.Field(1)
		if err != nil {
			return err
		}
		gen, err := enumField(rec, 2, "generation", generationFromVeekun)
		if err != nil {
			return err
		}
		typ, err := typeField(rec, 3)
		if err != nil {
			return err
		}
		power, err := uint8Field(rec, 4)
		if err != nil {
			return err
		}
		pp, err := uint8DefaultField(rec, 5, 0)
		if err != nil {
			return err
		}
		accuracy, _, err := optionalUint8Field(rec, 6)
		if err != nil {
			return err
		}
		priority, err := int8Field(rec, 7)
		if err != nil {
			return err
		}
		target, err := enumField(rec, 8, "target", targetFromVeekun)
		if err != nil {
			return err
		}
		class, err := enumField(rec, 9, "damage class", damageClassFromVeekun)
		if err != nil {
			return err
		}
		effect, err := enumField(rec, 10, "effect", effectFromVeekun)
		if err != nil {
			return err
		}
		chance, _, err := optionalUint8Field(rec, 11)
		if err != nil {
			return err
		}
		id := MoveID(raw)
		if _, seen := t.byID[id]; !seen {
			t.ids = append(t.ids, id)
		}
		name := veekun.PascalName(identifier)
		t.byID[id] = Move{
			ID:           id,
			Name:         name,
			Generation:   gen,
			Type:         typ,
			Power:        power,
			PP:           pp,
			Accuracy:     accuracy,
			Priority:     priority,
			Target:       target,
			Class:        class,
			Effect:       effect,
			EffectChance: chance,
			Meta:         defaultMeta(),
		}
		t.byName[normalizeName(name)] = id
		return nil
	})
}

// moveIDField reads a move id column, reporting side-series rows so the
// caller can skip them.
func moveIDField(rec veekun.Record, index int) (MoveID, bool, error) {
	raw, err := rec.Uint(index)
	if err != nil {
		return 0, false, err
	}
	if raw >= sideSeriesMoveID {
		return 0, true, nil
	}
	if raw == 0 {
		return 0, false, rec.Errorf(index, "invalid move: %d", raw)
	}
	return MoveID(raw), false, nil
}
