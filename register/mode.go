package register

import (
	"iter"
	"slices"
)

// Mode is an architecture bit width.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_16 = Mode(16) // 16
	MODE_32 = Mode(32) // 32
	MODE_64 = Mode(64) // 64
)

var modes = []Mode{MODE_16, MODE_32, MODE_64}

// Modes iterates over the supported architecture modes, narrowest first.
func Modes() iter.Seq[Mode] {
	return slices.Values(modes)
}

// Valid returns true if the mode has a register catalog.
func (mode Mode) Valid() bool {
	return slices.Contains(modes, mode)
}

// ParseMode converts "16", "32" or "64" into a Mode.
func ParseMode(text string) (mode Mode, ok bool) {
	for m := range Modes() {
		if m.String() == text {
			return m, true
		}
	}

	return
}
