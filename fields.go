package pokedex

import (
	"math"

	"github.com/louisbranch/pokedex/veekun"
)

// enumField reads an unsigned field and converts it through one of the
// fromVeekun functions, reporting unknown values as field errors.
func enumField[E any](rec veekun.Record, index int, what string, from func(uint64) (E, bool)) (E, error) {
	var zero E
	v, err := rec.Uint(index)
	if err != nil {
		return zero, err
	}
	e, ok := from(v)
	if !ok {
		return zero, rec.Errorf(index, "invalid %s: %d", what, v)
	}
	return e, nil
}

// enumDefaultField is enumField with a default for blank fields.
func enumDefaultField[E any](rec veekun.Record, index int, what string, from func(uint64) (E, bool), def E) (E, error) {
	var zero E
	v, ok, err := rec.OptionalUint(index)
	if err != nil {
		return zero, err
	}
	if !ok {
		return def, nil
	}
	e, ok := from(v)
	if !ok {
		return zero, rec.Errorf(index, "invalid %s: %d", what, v)
	}
	return e, nil
}

func uint8Field(rec veekun.Record, index int) (uint8, error) {
	v, err := rec.Uint(index)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		return 0, rec.Errorf(index, "value out of range: %d", v)
	}
	return uint8(v), nil
}

func uint8DefaultField(rec veekun.Record, index int, def uint8) (uint8, error) {
	v, err := rec.UintDefault(index, uint64(def))
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		return 0, rec.Errorf(index, "value out of range: %d", v)
	}
	return uint8(v), nil
}

// optionalUint8Field reads a field that may be blank. A blank field reports
// ok false with no error.
func optionalUint8Field(rec veekun.Record, index int) (uint8, bool, error) {
	v, ok, err := rec.OptionalUint(index)
	if err != nil || !ok {
		return 0, ok, err
	}
	if v > math.MaxUint8 {
		return 0, false, rec.Errorf(index, "value out of range: %d", v)
	}
	return uint8(v), true, nil
}

func uint16Field(rec veekun.Record, index int) (uint16, error) {
	v, err := rec.Uint(index)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		return 0, rec.Errorf(index, "value out of range: %d", v)
	}
	return uint16(v), nil
}

func int8Field(rec veekun.Record, index int) (int8, error) {
	v, err := rec.Int(index)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, rec.Errorf(index, "value out of range: %d", v)
	}
	return int8(v), nil
}

// optionalInt8Field reads a signed field that may be blank. A blank field
// reports ok false with no error.
func optionalInt8Field(rec veekun.Record, index int) (int8, bool, error) {
	v, ok, err := rec.OptionalInt(index)
	if err != nil || !ok {
		return 0, ok, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, false, rec.Errorf(index, "value out of range: %d", v)
	}
	return int8(v), true, nil
}
