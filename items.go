package pokedex

import (
	"io/fs"
	"math"
	"sort"

	"github.com/louisbranch/pokedex/veekun"
)

// ItemCategory is the broad grouping of an item. It organizes the bag and
// carries no battle behavior of its own.
type ItemCategory uint8

const (
	// ItemCategoryStatBoosts covers X Attack and friends, Dire Hit, and
	// Guard Spec.
	ItemCategoryStatBoosts ItemCategory = iota + 1
	// ItemCategoryEffortDrop covers berries that lower EVs and raise
	// happiness.
	ItemCategoryEffortDrop
	// ItemCategoryMedicine covers berries that act as medicine.
	ItemCategoryMedicine
	// ItemCategoryOther covers miscellaneous berries.
	ItemCategoryOther
	// ItemCategoryInAPinch covers berries consumed at quarter HP.
	ItemCategoryInAPinch
	// ItemCategoryPickyHealing covers berries that heal an eighth of max
	// HP unless their flavor is disliked.
	ItemCategoryPickyHealing
	// ItemCategoryTypeProtection covers berries that halve the damage of
	// a typed attack.
	ItemCategoryTypeProtection
	// ItemCategoryBakingOnly covers berries only useful for baking.
	ItemCategoryBakingOnly
	// ItemCategoryCollectibles covers items with no effect that can be
	// traded for items or moves.
	ItemCategoryCollectibles
	// ItemCategoryEvolution covers items involved in evolution.
	ItemCategoryEvolution
	// ItemCategorySpelunking covers non-held items affecting wild battles,
	// and the Escape Rope.
	ItemCategorySpelunking
	// ItemCategoryHeldItems covers miscellaneous held items.
	ItemCategoryHeldItems
	// ItemCategoryChoice covers the Choice Band, Scarf, and Specs.
	ItemCategoryChoice
	// ItemCategoryEffortTraining covers items that add EVs but halve
	// Speed, and the Macho Brace.
	ItemCategoryEffortTraining
	// ItemCategoryBadHeldItems covers held items with a negative effect
	// on the holder.
	ItemCategoryBadHeldItems
	// ItemCategoryTraining covers held items useful in training.
	ItemCategoryTraining
	// ItemCategoryPlates covers the Arceus type plates.
	ItemCategoryPlates
	// ItemCategorySpeciesSpecific covers held items affecting a single
	// species.
	ItemCategorySpeciesSpecific
	// ItemCategoryTypeEnhancement covers held items that boost typed
	// moves.
	ItemCategoryTypeEnhancement
	// ItemCategoryEventItems covers key items from events.
	ItemCategoryEventItems
	// ItemCategoryGameplay covers key items for gameplay elements.
	ItemCategoryGameplay
	// ItemCategoryPlotAdvancement covers key items for plot advancement.
	ItemCategoryPlotAdvancement
	// ItemCategoryUnused covers key items that have code but no use.
	ItemCategoryUnused
	// ItemCategoryLoot covers valuables that can be sold or traded.
	ItemCategoryLoot
	// ItemCategoryMail covers held items carrying a message for a trade.
	ItemCategoryMail
	// ItemCategoryVitamins covers medicines that increase EVs.
	ItemCategoryVitamins
	// ItemCategoryHealing covers medicines that restore HP.
	ItemCategoryHealing
	// ItemCategoryPPRecovery covers medicines that restore PP.
	ItemCategoryPPRecovery
	// ItemCategoryRevival covers medicines that revive from fainting.
	ItemCategoryRevival
	// ItemCategoryStatusCures covers medicines that cure ailments.
	ItemCategoryStatusCures
)

const (
	// ItemCategoryMulch covers soil treatments for berry growth.
	ItemCategoryMulch ItemCategory = iota + 32
	// ItemCategorySpecialBalls covers Poké Balls with a special effect.
	ItemCategorySpecialBalls
	// ItemCategoryStandardBalls covers Poké Balls without one.
	ItemCategoryStandardBalls
	// ItemCategoryDexCompletion covers fossils, Honey, and the Odd
	// Keystone.
	ItemCategoryDexCompletion
	// ItemCategoryScarves covers held items raising contest condition.
	ItemCategoryScarves
	// ItemCategoryMachines covers TMs and HMs.
	ItemCategoryMachines
	// ItemCategoryFlutes covers the Blue, Red, and Yellow Flutes.
	ItemCategoryFlutes
	// ItemCategoryApricornBalls covers Poké Balls made from apricorns.
	ItemCategoryApricornBalls
	// ItemCategoryApricornBox covers apricorns.
	ItemCategoryApricornBox
	// ItemCategoryDataCards covers key items recording Pokéathlon
	// statistics.
	ItemCategoryDataCards
	// ItemCategoryJewels covers consumed held items that power up a typed
	// move once.
	ItemCategoryJewels
	// ItemCategoryMiracleShooter covers Wonder Launcher items.
	ItemCategoryMiracleShooter
)

var itemCategoryNames = map[ItemCategory]string{
	ItemCategoryStatBoosts:      "StatBoosts",
	ItemCategoryEffortDrop:      "EffortDrop",
	ItemCategoryMedicine:        "Medicine",
	ItemCategoryOther:           "Other",
	ItemCategoryInAPinch:        "InAPinch",
	ItemCategoryPickyHealing:    "PickyHealing",
	ItemCategoryTypeProtection:  "TypeProtection",
	ItemCategoryBakingOnly:      "BakingOnly",
	ItemCategoryCollectibles:    "Collectibles",
	ItemCategoryEvolution:       "Evolution",
	ItemCategorySpelunking:      "Spelunking",
	ItemCategoryHeldItems:       "HeldItems",
	ItemCategoryChoice:          "Choice",
	ItemCategoryEffortTraining:  "EffortTraining",
	ItemCategoryBadHeldItems:    "BadHeldItems",
	ItemCategoryTraining:        "Training",
	ItemCategoryPlates:          "Plates",
	ItemCategorySpeciesSpecific: "SpeciesSpecific",
	ItemCategoryTypeEnhancement: "TypeEnhancement",
	ItemCategoryEventItems:      "EventItems",
	ItemCategoryGameplay:        "Gameplay",
	ItemCategoryPlotAdvancement: "PlotAdvancement",
	ItemCategoryUnused:          "Unused",
	ItemCategoryLoot:            "Loot",
	ItemCategoryMail:            "Mail",
	ItemCategoryVitamins:        "Vitamins",
	ItemCategoryHealing:         "Healing",
	ItemCategoryPPRecovery:      "PPRecovery",
	ItemCategoryRevival:         "Revival",
	ItemCategoryStatusCures:     "StatusCures",
	ItemCategoryMulch:           "Mulch",
	ItemCategorySpecialBalls:    "SpecialBalls",
	ItemCategoryStandardBalls:   "StandardBalls",
	ItemCategoryDexCompletion:   "DexCompletion",
	ItemCategoryScarves:         "Scarves",
	ItemCategoryMachines:        "Machines",
	ItemCategoryFlutes:          "Flutes",
	ItemCategoryApricornBalls:   "ApricornBalls",
	ItemCategoryApricornBox:     "ApricornBox",
	ItemCategoryDataCards:       "DataCards",
	ItemCategoryJewels:          "Jewels",
	ItemCategoryMiracleShooter:  "MiracleShooter",
}

func (c ItemCategory) String() string {
	if name, ok := itemCategoryNames[c]; ok {
		return name
	}
	return "ItemCategory(?)"
}

func itemCategoryFromVeekun(v uint64) (ItemCategory, bool) {
	c := ItemCategory(v)
	if uint64(c) != v {
		return 0, false
	}
	_, ok := itemCategoryNames[c]
	return c, ok
}

// Unused reports whether items in the category have no effect in battle.
func (c ItemCategory) Unused() bool {
	switch c {
	case ItemCategoryEffortDrop, ItemCategoryBakingOnly,
		ItemCategoryCollectibles, ItemCategorySpelunking,
		ItemCategoryEffortTraining, ItemCategoryTraining,
		ItemCategoryEventItems, ItemCategoryGameplay,
		ItemCategoryPlotAdvancement, ItemCategoryUnused, ItemCategoryLoot,
		ItemCategoryMail, ItemCategoryVitamins, ItemCategoryMulch,
		ItemCategorySpecialBalls, ItemCategoryStandardBalls,
		ItemCategoryScarves, ItemCategoryApricornBalls,
		ItemCategoryApricornBox, ItemCategoryDataCards,
		ItemCategoryMiracleShooter:
		return true
	}
	return false
}

// Pocket returns the bag pocket that stores items of the category.
func (c ItemCategory) Pocket() Pocket {
	switch {
	case c == ItemCategoryStatBoosts, c == ItemCategoryFlutes,
		c == ItemCategoryMiracleShooter:
		return PocketBattle
	case c >= ItemCategoryEffortDrop && c <= ItemCategoryBakingOnly:
		return PocketBerries
	case c >= ItemCategoryEventItems && c <= ItemCategoryUnused,
		c == ItemCategoryApricornBox, c == ItemCategoryDataCards:
		return PocketKey
	case c == ItemCategoryMail:
		return PocketMail
	case c >= ItemCategoryVitamins && c <= ItemCategoryStatusCures:
		return PocketMedicine
	case c == ItemCategorySpecialBalls, c == ItemCategoryStandardBalls,
		c == ItemCategoryApricornBalls:
		return PocketPokeballs
	case c == ItemCategoryMachines:
		return PocketMachines
	}
	return PocketMisc
}

// Pocket is the bag compartment an item is stored in.
type Pocket uint8

const (
	PocketMisc Pocket = iota
	PocketMedicine
	PocketPokeballs
	PocketMachines
	PocketBerries
	PocketMail
	PocketBattle
	PocketKey
)

var pocketNames = [...]string{
	"Misc", "Medicine", "Pokeballs", "Machines", "Berries", "Mail",
	"Battle", "Key",
}

func (p Pocket) String() string {
	if int(p) >= len(pocketNames) {
		return "Pocket(?)"
	}
	return pocketNames[p]
}

// FlingEffect is the extra effect of an item thrown with Fling.
type FlingEffect uint8

const (
	FlingNone FlingEffect = iota
	FlingBadlyPoison
	FlingBurn
	FlingActivateBerry
	FlingActivateHerb
	FlingParalyze
	FlingPoison
	FlingFlinch
)

var flingEffectNames = [...]string{
	"None", "BadlyPoison", "Burn", "ActivateBerry", "ActivateHerb",
	"Paralyze", "Poison", "Flinch",
}

func (e FlingEffect) String() string {
	if int(e) >= len(flingEffectNames) {
		return "FlingEffect(?)"
	}
	return flingEffectNames[e]
}

func flingEffectFromVeekun(v uint64) (FlingEffect, bool) {
	if v >= uint64(len(flingEffectNames)) {
		return 0, false
	}
	return FlingEffect(v), true
}

// ItemFlags are miscellaneous bitflags for items.
type ItemFlags uint8

const (
	// ItemFlagCountable stacks in the bag.
	ItemFlagCountable ItemFlags = 1 << iota
	// ItemFlagConsumable is consumed when used.
	ItemFlagConsumable
	// ItemFlagUsableOverworld is usable out of battle.
	ItemFlagUsableOverworld
	// ItemFlagUsableInBattle is usable in battle.
	ItemFlagUsableInBattle
	// ItemFlagHoldable can be held by a Pokémon.
	ItemFlagHoldable
	// ItemFlagHoldablePassive applies its effect while held.
	ItemFlagHoldablePassive
	// ItemFlagHoldableActive requires active use while held.
	ItemFlagHoldableActive
	// ItemFlagUnderground can appear in the Sinnoh Underground.
	ItemFlagUnderground
)

const itemFlagCount = 8

// Has reports whether every given flag is set.
func (f ItemFlags) Has(flags ItemFlags) bool { return f&flags == flags }

func itemFlagFromVeekun(v uint64) (ItemFlags, bool) {
	if v < 1 || v > itemFlagCount {
		return 0, false
	}
	return 1 << (v - 1), true
}

// ItemID is the table identifier of an item. Zero is not a valid id.
type ItemID uint16

// An Item is an object a trainer can keep in their bag. Held items matter
// to battles; most of the rest is carried for completeness.
type Item struct {
	ID       ItemID
	Name     string
	Category ItemCategory
	Cost     uint16
	// FlingPower is the power of Fling with this item, or 0 when it
	// cannot be flung.
	FlingPower  uint8
	FlingEffect FlingEffect
	Flags       ItemFlags

	berry    Berry
	hasBerry bool
}

// Berry returns the berry properties of the item, if it is a berry.
func (i Item) Berry() (Berry, bool) {
	return i.berry, i.hasBerry
}

// ItemTable holds every item keyed by id, with berries reachable by berry
// id.
type ItemTable struct {
	byID    map[ItemID]Item
	byName  map[string]ItemID
	byBerry map[BerryID]ItemID
	ids     []ItemID
}

// ByID returns the item with the given id.
func (t *ItemTable) ByID(id ItemID) (Item, bool) {
	item, ok := t.byID[id]
	return item, ok
}

// ByName returns the item with the given name. Case, spaces, and hyphens
// are ignored, so "oran-berry" and "OranBerry" find the same item.
func (t *ItemTable) ByName(name string) (Item, bool) {
	id, ok := t.byName[normalizeName(name)]
	if !ok {
		return Item{}, false
	}
	return t.byID[id], true
}

// Berry returns the berry with the given berry id.
func (t *ItemTable) Berry(id BerryID) (Berry, bool) {
	itemID, ok := t.byBerry[id]
	if !ok {
		return Berry{}, false
	}
	berry, ok := t.byID[itemID].Berry()
	return berry, ok
}

// IDs returns the item ids in ascending order.
func (t *ItemTable) IDs() []ItemID {
	ids := make([]ItemID, len(t.ids))
	copy(ids, t.ids)
	return ids
}

// Len returns the number of items.
func (t *ItemTable) Len() int { return len(t.byID) }

// BerryIDs returns the berry ids in ascending order.
func (t *ItemTable) BerryIDs() []BerryID {
	ids := make([]BerryID, 0, len(t.byBerry))
	for id := range t.byBerry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func loadItems(fsys fs.FS) (*ItemTable, error) {
	t := &ItemTable{
		byID:    make(map[ItemID]Item),
		byName:  make(map[string]ItemID),
		byBerry: make(map[BerryID]ItemID),
	}
	if err := t.readItems(fsys); err != nil {
		return nil, err
	}
	if err := t.readBerries(fsys); err != nil {
		return nil, err
	}
	if err := t.readFlags(fsys); err != nil {
		return nil, err
	}
	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
	return t, nil
}

func (t *ItemTable) readItems(fsys fs.FS) error {
	return veekun.EachRecord(fsys, veekun.ItemsFile, func(rec veekun.Record) error {
		id, err := itemIDField(rec, 0)
		if err != nil {
			return err
		}
		identifier, err := rec.Field(1)
		if err != nil {
			return err
		}
		category, err := enumField(rec, 2, "item category", itemCategoryFromVeekun)
		if err != nil {
			return err
		}
		cost, err := uint16Field(rec, 3)
		if err != nil {
			return err
		}
		flingPower, _, err := optionalUint8Field(rec, 4)
		if err != nil {
			return err
		}
		rawEffect, err := rec.UintDefault(5, 0)
		if err != nil {
			return err
		}
		flingEffect, ok := flingEffectFromVeekun(rawEffect)
		if !ok {
			return rec.Errorf(5, "invalid fling effect: %d", rawEffect)
		}
		if _, seen := t.byID[id]; !seen {
			t.ids = append(t.ids, id)
		}
		name := veekun.PascalName(identifier)
		t.byID[id] = Item{
			ID:          id,
			Name:        name,
			Category:    category,
			Cost:        cost,
			FlingPower:  flingPower,
			FlingEffect: flingEffect,
		}
		t.byName[normalizeName(name)] = id
		return nil
	})
}

func (t *ItemTable) readFlags(fsys fs.FS) error {
	return veekun.EachRecord(fsys, veekun.ItemFlagMapFile, func(rec veekun.Record) error {
		id, err := itemIDField(rec, 0)
		if err != nil {
			return err
		}
		item, ok := t.byID[id]
		if !ok {
			return rec.Errorf(0, "unknown item: %d", id)
		}
		flag, err := enumField(rec, 1, "item flag", itemFlagFromVeekun)
		if err != nil {
			return err
		}
		item.Flags |= flag
		t.byID[id] = item
		return nil
	})
}

func itemIDField(rec veekun.Record, index int) (ItemID, error) {
	v, err := rec.Uint(index)
	if err != nil {
		return 0, err
	}
	if v == 0 || v > math.MaxUint16 {
		return 0, rec.Errorf(index, "invalid item: %d", v)
	}
	return ItemID(v), nil
}
