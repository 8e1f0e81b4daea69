package pokedex

import (
	"io/fs"

	"github.com/louisbranch/pokedex/veekun"
)

// ContestType is the contest classification of moves and berries. It only
// matters here through its pairing with flavors.
type ContestType uint8

const (
	ContestCool ContestType = iota
	ContestTough
	ContestCute
	ContestBeauty
	ContestSmart
)

var contestTypeNames = [...]string{
	"Cool", "Tough", "Cute", "Beauty", "Smart",
}

func (c ContestType) String() string {
	if int(c) >= len(contestTypeNames) {
		return "ContestType(?)"
	}
	return contestTypeNames[c]
}

// Flavor returns the berry flavor paired with the contest type.
func (c ContestType) Flavor() Flavor { return Flavor(c) }

func contestTypeFromVeekun(v uint64) (ContestType, bool) {
	switch v {
	case 1:
		return ContestCool, true
	case 2:
		return ContestBeauty, true
	case 3:
		return ContestCute, true
	case 4:
		return ContestSmart, true
	case 5:
		return ContestTough, true
	}
	return 0, false
}

// Flavor is a berry taste that a Pokémon may like or dislike depending on
// its nature. Flavors pair index for index with contest types and with the
// five stats a nature can skew.
type Flavor uint8

const (
	FlavorSpicy Flavor = iota
	FlavorSour
	FlavorSweet
	FlavorDry
	FlavorBitter
)

// FlavorCount is the number of flavors.
const FlavorCount = 5

var flavorNames = [FlavorCount]string{
	"Spicy", "Sour", "Sweet", "Dry", "Bitter",
}

func (f Flavor) String() string {
	if int(f) >= len(flavorNames) {
		return "Flavor(?)"
	}
	return flavorNames[f]
}

// ContestType returns the contest type paired with the flavor.
func (f Flavor) ContestType() ContestType { return ContestType(f) }

// BerryID is the table identifier of a berry. Zero is not a valid id.
type BerryID uint8

// BerryCount is the number of berries through generation V. Berry ids run
// from 1 to BerryCount.
const BerryCount = 64

// A Berry is a held item a Pokémon can consume in battle.
type Berry struct {
	ID BerryID
	// Item is the id of the bag item carrying these berry properties.
	Item             ItemID
	NaturalGiftPower uint8
	NaturalGiftType  Type

	flavor    Flavor
	hasFlavor bool
}

// Flavor returns the berry's dominant flavor. Berries whose strongest
// flavors tie, taste-free berries included, have no dominant flavor.
func (b Berry) Flavor() (Flavor, bool) {
	return b.flavor, b.hasFlavor
}

// readBerries loads berries.csv and berry_flavors.csv and attaches the
// results to the owning items.
func (t *ItemTable) readBerries(fsys fs.FS) error {
	berries := make(map[BerryID]Berry)
	err := veekun.EachRecord(fsys, veekun.BerriesFile, func(rec veekun.Record) error {
		id, err := berryIDField(rec, 0)
		if err != nil {
			return err
		}
		itemID, err := itemIDField(rec, 1)
		if err != nil {
			return err
		}
		power, err := uint8Field(rec, 3)
		if err != nil {
			return err
		}
		typ, err := typeField(rec, 4)
		if err != nil {
			return err
		}
		if _, ok := t.byID[itemID]; !ok {
			return rec.Errorf(1, "unknown item: %d", itemID)
		}
		berries[id] = Berry{
			ID:               id,
			Item:             itemID,
			NaturalGiftPower: power,
			NaturalGiftType:  typ,
		}
		return nil
	})
	if err != nil {
		return err
	}

	flavors := make(map[BerryID][FlavorCount]uint8)
	err = veekun.EachRecord(fsys, veekun.BerryFlavorsFile, func(rec veekun.Record) error {
		id, err := berryIDField(rec, 0)
		if err != nil {
			return err
		}
		if _, ok := berries[id]; !ok {
			return rec.Errorf(0, "unknown berry: %d", id)
		}
		contest, err := enumField(rec, 1, "contest type", contestTypeFromVeekun)
		if err != nil {
			return err
		}
		value, err := uint8Field(rec, 2)
		if err != nil {
			return err
		}
		values := flavors[id]
		values[contest.Flavor()] = value
		flavors[id] = values
		return nil
	})
	if err != nil {
		return err
	}

	for id, berry := range berries {
		berry.flavor, berry.hasFlavor = dominantFlavor(flavors[id])
		item := t.byID[berry.Item]
		item.berry = berry
		item.hasBerry = true
		t.byID[berry.Item] = item
		t.byBerry[id] = berry.Item
	}
	return nil
}

// dominantFlavor scans in flavor order and keeps the strictly strongest
// value. A tie at the top, including the all-zero case, leaves the berry
// without a dominant flavor.
func dominantFlavor(values [FlavorCount]uint8) (Flavor, bool) {
	var best Flavor
	var bestValue uint8
	found := false
	for i, value := range values {
		if value > bestValue {
			best = Flavor(i)
			bestValue = value
			found = true
		} else if value == bestValue {
			found = false
		}
	}
	return best, found
}

func berryIDField(rec veekun.Record, index int) (BerryID, error) {
	v, err := rec.Uint(index)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > BerryCount {
		return 0, rec.Errorf(index, "invalid berry: %d", v)
	}
	return BerryID(v), nil
}
