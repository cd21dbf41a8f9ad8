package types

import "frameworkec-go/drivers/crosec"

// ------------------------
// Battery / charge limit
// ------------------------

type BatteryInfo struct {
	Name string `json:"name"` // e.g. "BAT1"
	Attr string `json:"attr"` // attribute exposed on the battery
}

// ChargeLimitValue is the EC's current limit setting.
type ChargeLimitValue struct {
	MaxPercent uint8 `json:"max_percent"`
	MinPercent uint8 `json:"min_percent"`
}

// ------------------------
// Keyboard backlight
// ------------------------

type BacklightInfo struct {
	Name string `json:"name"` // registration name
	Max  int    `json:"max"`
}

type BacklightValue struct {
	Percent uint8 `json:"percent"`
	Enabled bool  `json:"enabled"`
}

// Generic pairing of a bit value with a printable name.
// T is a small bitset type (e.g., crosec.ChargeLimitModes).
type BitName[T ~uint8 | ~uint16] struct {
	Bit  T
	Name string
}

// BitIter is a zero-alloc iterator over set bits in a value, filtered by a table.
// Caller advances with Next(); no callbacks, no closures.
type BitIter[T ~uint8 | ~uint16] struct {
	v     uint16
	i     int
	table []BitName[T]
}

// NewBitIter constructs an iterator over set bits present in v that also exist in table.
func NewBitIter[T ~uint8 | ~uint16](v T, table []BitName[T]) BitIter[T] {
	return BitIter[T]{v: uint16(v), i: 0, table: table}
}

// Next returns the next SET bit: (name, ok). ok=false when done.
func (it *BitIter[T]) Next() (string, bool) {
	for it.i < len(it.table) {
		e := it.table[it.i]
		it.i++
		if (it.v & uint16(e.Bit)) != 0 {
			return e.Name, true
		}
	}
	return "", false
}

// Reset allows reusing the iterator.
func (it *BitIter[T]) Reset() { it.i = 0 }

// -----------------------------
// Display tables for bitfields
// -----------------------------

// ChargeLimitModes display (ordering is cosmetic).
var ChargeLimitModesTable = [...]BitName[crosec.ChargeLimitModes]{
	{crosec.ChgLimitDisable, "disable"},
	{crosec.ChgLimitSet, "set_limit"},
	{crosec.ChgLimitGet, "get_limit"},
	{crosec.ChgLimitOverride, "override"},
}
