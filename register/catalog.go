package register

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/ngpasm/internal"
)

// entry describes a catalog register; parent names an earlier entry.
type entry struct {
	name    string
	size    int
	parent  string
	aliases []string
}

// roots returns parentless entries of one size.
func roots(size int, names ...string) iter.Seq[entry] {
	return func(yield func(entry) bool) {
		for _, name := range names {
			if !yield(entry{name: name, size: size}) {
				return
			}
		}
	}
}

// subs returns entries of one size from (name, parent) pairs.
func subs(size int, pairs ...string) iter.Seq[entry] {
	return func(yield func(entry) bool) {
		for n := 0; n+1 < len(pairs); n += 2 {
			if !yield(entry{name: pairs[n], size: size, parent: pairs[n+1]}) {
				return
			}
		}
	}
}

// alias returns a single parentless entry carrying aliases.
func alias(name string, size int, aliases ...string) iter.Seq[entry] {
	return slices.Values([]entry{{name: name, size: size, aliases: aliases}})
}

func segments(names ...string) iter.Seq[entry] {
	return roots(16, names...)
}

var catalog = map[Mode]func() iter.Seq[entry]{
	MODE_16: func() iter.Seq[entry] {
		return internal.IterSeqConcat(
			alias("AX", 16, "AX_ALIAS"),
			roots(16, "CX", "DX", "BX", "SP", "BP", "SI", "DI"),
			subs(8,
				"AL", "AX", "AH", "AX",
				"CL", "CX", "CH", "CX",
				"DL", "DX", "DH", "DX",
				"BL", "BX", "BH", "BX"),
			segments("CS", "DS", "ES", "SS"),
		)
	},
	MODE_32: func() iter.Seq[entry] {
		return internal.IterSeqConcat(
			alias("EAX", 32, "EAX_ALIAS"),
			roots(32, "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"),
			subs(16,
				"AX", "EAX", "CX", "ECX", "DX", "EDX", "BX", "EBX",
				"SP", "ESP", "BP", "EBP", "SI", "ESI", "DI", "EDI"),
			subs(8,
				"AL", "AX", "AH", "AX",
				"CL", "CX", "CH", "CX",
				"DL", "DX", "DH", "DX",
				"BL", "BX", "BH", "BX"),
			segments("CS", "DS", "ES", "SS", "FS", "GS"),
			roots(32, "CR0", "CR2", "CR3", "CR4"),
		)
	},
	MODE_64: func() iter.Seq[entry] {
		return internal.IterSeqConcat(
			alias("RAX", 64, "RAX_ALIAS"),
			roots(64, "RCX", "RDX", "RBX", "RSP", "RBP", "RSI", "RDI"),
			roots(64, extended("R%d")...),
			subs(32,
				"EAX", "RAX", "ECX", "RCX", "EDX", "RDX", "EBX", "RBX",
				"ESP", "RSP", "EBP", "RBP", "ESI", "RSI", "EDI", "RDI"),
			subs(32, extendedSubs("R%dD", "R%d")...),
			subs(16,
				"AX", "EAX", "CX", "ECX", "DX", "EDX", "BX", "EBX",
				"SP", "ESP", "BP", "EBP", "SI", "ESI", "DI", "EDI"),
			subs(16, extendedSubs("R%dW", "R%dD")...),
			subs(8,
				"AL", "AX", "CL", "CX", "DL", "DX", "BL", "BX",
				"SPL", "SP", "BPL", "BP", "SIL", "SI", "DIL", "DI"),
			subs(8, extendedSubs("R%dB", "R%dW")...),
			segments("CS", "DS", "ES", "SS", "FS", "GS"),
			roots(64, "CR0", "CR2", "CR3", "CR4", "CR8"),
		)
	},
}

// extended formats the names of R8 to R15.
func extended(format string) (names []string) {
	for n := 8; n <= 15; n++ {
		names = append(names, fmt.Sprintf(format, n))
	}

	return
}

// extendedSubs pairs R8 to R15 sub-register names with their parents.
func extendedSubs(format, parent string) (pairs []string) {
	for n := 8; n <= 15; n++ {
		pairs = append(pairs, fmt.Sprintf(format, n), fmt.Sprintf(parent, n))
	}

	return
}

// build assembles a catalog. The catalogs are static, so a bad entry panics.
func build(mode Mode, entries iter.Seq[entry]) *Set {
	byName := make(map[string]*Register)
	var regs []*Register

	for ent := range entries {
		var parent *Register
		if len(ent.parent) != 0 {
			var ok bool
			parent, ok = byName[ent.parent]
			if !ok {
				panic(fmt.Sprintf("register: %v-bit catalog: %v: parent %v undefined", mode, ent.name, ent.parent))
			}
		}

		reg, err := NewRegister(ent.name, ent.size, ent.aliases, parent)
		if err != nil {
			panic(fmt.Sprintf("register: %v-bit catalog: %v", mode, err))
		}

		byName[reg.name] = reg
		regs = append(regs, reg)
	}

	return NewSet(mode, regs...)
}

// New builds the register catalog for mode, or returns nil if the mode
// is not supported.
func New(mode Mode) *Set {
	entries, ok := catalog[mode]
	if !ok {
		return nil
	}

	return build(mode, entries())
}

// Get builds the register catalog for a mode given as "16", "32" or "64".
// Any other text yields nil, so callers can fall back without an error.
func Get(mode string) *Set {
	m, ok := ParseMode(mode)
	if !ok {
		return nil
	}

	return New(m)
}
