// Package pokedex carries the battle data of the Generation V main series
// games: species and their Pokémon, moves, items, berries, natures, and
// type efficacy, loaded from embedded veekun tables into immutable
// in-memory tables.
//
// Most programs use the shared bundle:
//
//	dex := pokedex.Default()
//	move, ok := dex.Moves.ByName("thunder-punch")
//
// Load builds a private bundle from the embedded data, and LoadFS from any
// file system with the same table layout.
package pokedex

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/louisbranch/pokedex/veekun"
)

// A Pokedex is one loaded bundle of battle data. Tables are read-only
// after load, and lookups return copies, so callers can never change what
// a later lookup observes.
type Pokedex struct {
	Efficacy EfficacyTable
	Palace   PalaceTable
	Moves    *MoveTable
	Items    *ItemTable
	Species  *SpeciesTable
}

// Load parses the embedded reference data into a fresh bundle.
func Load() (*Pokedex, error) {
	return LoadFS(veekun.Data())
}

// LoadFS parses a bundle from a file system holding the veekun tables.
// Tools use it to point at an alternate data directory.
func LoadFS(fsys fs.FS) (*Pokedex, error) {
	var (
		dex Pokedex
		err error
	)
	if dex.Efficacy, err = loadEfficacy(fsys); err != nil {
		return nil, err
	}
	if dex.Palace, err = loadPalace(fsys); err != nil {
		return nil, err
	}
	if dex.Moves, err = loadMoves(fsys); err != nil {
		return nil, err
	}
	if dex.Items, err = loadItems(fsys); err != nil {
		return nil, err
	}
	if dex.Species, err = loadSpecies(fsys); err != nil {
		return nil, err
	}
	if err := dex.checkRefs(); err != nil {
		return nil, err
	}
	return &dex, nil
}

// checkRefs verifies that every move and item the species tables
// reference exists, so following a reference can never come up empty.
func (d *Pokedex) checkRefs() error {
	for _, sid := range d.Species.ids {
		sp := d.Species.byID[sid]
		if sp.hasEvolvesFrom && sp.evolvesFrom.MoveID != 0 {
			if _, ok := d.Moves.byID[sp.evolvesFrom.MoveID]; !ok {
				return fmt.Errorf("%s: species %d evolves with unknown move: %d",
					veekun.PokemonEvolutionFile, sid, sp.evolvesFrom.MoveID)
			}
		}
		if sp.hasEvolvesFrom && sp.evolvesFrom.Item != 0 {
			if _, ok := d.Items.byID[sp.evolvesFrom.Item]; !ok {
				return fmt.Errorf("%s: species %d evolves with unknown item: %d",
					veekun.PokemonEvolutionFile, sid, sp.evolvesFrom.Item)
			}
		}
		for i := range sp.Pokemon {
			p := &sp.Pokemon[i]
			for _, moves := range p.Moves {
				for _, pm := range moves {
					if _, ok := d.Moves.byID[pm.MoveID]; !ok {
						return fmt.Errorf("%s: pokemon %d learns unknown move: %d",
							veekun.PokemonMovesFile, p.ID, pm.MoveID)
					}
				}
			}
		}
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultDex  *Pokedex
	defaultErr  error
)

// Default returns the process-wide bundle of embedded data, loading it on
// first use. It panics when the embedded data cannot be parsed, which only
// happens when the data shipped with the package is broken.
func Default() *Pokedex {
	defaultOnce.Do(func() {
		defaultDex, defaultErr = Load()
	})
	if defaultErr != nil {
		panic("pokedex: " + defaultErr.Error())
	}
	return defaultDex
}
