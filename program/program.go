// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program accumulates mnemonics into an assembly listing.
package program

import (
	"io"
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/ngpasm/mnemonic"
	"github.com/ezrec/ngpasm/register"
)

// Program is an ordered list of mnemonics for one architecture mode.
type Program struct {
	Filename string        // Name of the listing, informational only.
	Mode     register.Mode // Target architecture mode.
	Indent   string        // Prefix for every rendered line.
	Verbose  bool          // If set, logs each rendered line.

	regs      *register.Set
	mnemonics []*mnemonic.Mnemonic
}

// New creates an empty program. The register set is nil if mode is not
// supported.
func New(filename string, mode register.Mode) (prog *Program) {
	prog = &Program{
		Filename: filename,
		Mode:     mode,
		regs:     register.New(mode),
	}

	return
}

// Registers returns the register set of the program's mode.
func (prog *Program) Registers() *register.Set {
	return prog.regs
}

// Insert appends mnemonics to the program.
func (prog *Program) Insert(ms ...*mnemonic.Mnemonic) {
	prog.mnemonics = append(prog.mnemonics, ms...)
}

// Len returns the number of mnemonics.
func (prog *Program) Len() int {
	return len(prog.mnemonics)
}

// SetComments enables or disables the comment of every mnemonic inserted
// so far.
func (prog *Program) SetComments(enabled bool) {
	for _, m := range prog.mnemonics {
		m.CommentEnabled = enabled
	}
}

// Mnemonics iterates over the program's mnemonics and their positions.
func (prog *Program) Mnemonics() iter.Seq2[int, *mnemonic.Mnemonic] {
	return slices.All(prog.mnemonics)
}

// Lines renders each mnemonic in turn. Iteration stops after the first error.
func (prog *Program) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for n, m := range prog.mnemonics {
			line, err := m.Construct(prog.Indent)
			if err != nil {
				yield("", &ErrInstruction{Index: n, Name: m.Name(), Err: err})
				return
			}

			if prog.Verbose {
				log.Printf("%v:%v: %v", prog.Filename, n, line)
			}

			if !yield(line, nil) {
				return
			}
		}
	}
}

// Generate renders the listing, one instruction per line, without a
// trailing newline.
func (prog *Program) Generate() (listing string, err error) {
	lines := make([]string, 0, len(prog.mnemonics))
	for line, lerr := range prog.Lines() {
		if lerr != nil {
			err = lerr
			return
		}
		lines = append(lines, line)
	}

	listing = strings.Join(lines, "\n")
	return
}

// WriteTo writes the listing followed by a newline, as for a source file.
// Nothing is written if any instruction fails to render.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	listing, err := prog.Generate()
	if err != nil {
		return
	}

	if len(listing) != 0 {
		listing += "\n"
	}

	written, err := io.WriteString(w, listing)
	n = int64(written)
	return
}
