// Package veekun reads the Veekun Pokédex CSV tables bundled with this
// module and converts their identifiers into display names.
//
// The package knows nothing about the Pokédex data model. It exposes a
// record reader with positional field access, the error taxonomy for
// malformed tables, and the embedded data files. The pokedex package builds
// its tables on top of these primitives.
package veekun
