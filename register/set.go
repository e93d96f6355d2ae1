package register

import (
	"iter"
	"slices"
	"strings"
)

// Set is the register catalog of one architecture mode.
//
// A Set is read-only once built, and may be shared between goroutines.
type Set struct {
	mode  Mode
	arena []*Register    // Distinct registers, in build order.
	keys  []string       // Names and aliases, in insertion order.
	index map[string]int // Key to arena index.
}

// NewSet builds a set from registers. Each register is keyed by its name,
// then by each of its aliases; a later key replaces an earlier one.
func NewSet(mode Mode, regs ...*Register) (set *Set) {
	set = &Set{
		mode:  mode,
		index: make(map[string]int, len(regs)),
	}

	for _, reg := range regs {
		set.arena = append(set.arena, reg)
		n := len(set.arena) - 1
		set.insert(reg.name, n)
		for _, alias := range reg.aliases {
			set.insert(alias, n)
		}
	}

	return
}

func (set *Set) insert(key string, n int) {
	if _, ok := set.index[key]; !ok {
		set.keys = append(set.keys, key)
	}
	set.index[key] = n
}

// Mode returns the architecture mode of the set.
func (set *Set) Mode() Mode {
	return set.mode
}

// Len returns the number of keys, aliases included.
func (set *Set) Len() int {
	return len(set.keys)
}

// Index looks up a register by its exact, case sensitive, key.
func (set *Set) Index(key string) (reg *Register, err error) {
	n, ok := set.index[key]
	if !ok {
		err = ErrRegisterNotFound{Key: key, Mode: set.mode}
		return
	}

	reg = set.arena[n]
	return
}

// Get looks up a register after upper-casing name, returning def when
// absent. Unlike Index, Get is case insensitive for the upper-case
// catalogs.
func (set *Set) Get(name string, def *Register) *Register {
	n, ok := set.index[strings.ToUpper(name)]
	if !ok {
		return def
	}

	return set.arena[n]
}

// Contains reports whether Get would find name.
func (set *Set) Contains(name string) bool {
	_, ok := set.index[strings.ToUpper(name)]
	return ok
}

// Keys iterates over all names and aliases in insertion order.
func (set *Set) Keys() iter.Seq[string] {
	return slices.Values(set.keys)
}

// All iterates over key and register pairs in insertion order.
func (set *Set) All() iter.Seq2[string, *Register] {
	return func(yield func(string, *Register) bool) {
		for _, key := range set.keys {
			if !yield(key, set.arena[set.index[key]]) {
				return
			}
		}
	}
}

// Registers iterates over the distinct registers of the set.
func (set *Set) Registers() iter.Seq[*Register] {
	return slices.Values(set.arena)
}

// Roots returns the registers without a parent, in build order.
func (set *Set) Roots() (roots []*Register) {
	for _, reg := range set.arena {
		if reg.parent == nil {
			roots = append(roots, reg)
		}
	}

	return
}

// Children returns the registers whose direct parent is reg.
func (set *Set) Children(reg *Register) (children []*Register) {
	for _, child := range set.arena {
		if child.parent == reg {
			children = append(children, child)
		}
	}

	return
}
