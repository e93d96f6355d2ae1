// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script builds programs from Starlark source.
//
// Every key of the program's register set is predeclared as a register
// value, along with one builtin per registered mnemonic kind:
//
//	add(AX, BX)
//	inc(CX, comment = "next element")
//	emit("nop")
//	indent("    ")
//
// Each builtin appends an instruction to the program.
package script

import (
	"iter"
	"log"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ngpasm/internal"
	"github.com/ezrec/ngpasm/mnemonic"
	"github.com/ezrec/ngpasm/program"
	"github.com/ezrec/ngpasm/register"
)

// Script executes Starlark source against a program.
type Script struct {
	Verbose bool             // If set, logs each appended instruction.
	Program *program.Program // Program receiving the instructions.
}

// New creates a script runner for prog.
func New(prog *program.Program) *Script {
	return &Script{Program: prog}
}

// Exec runs the source, appending its instructions to the program. src may
// be a string, a []byte, an io.Reader or nil to read filename.
func (sc *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	if sc.Program.Registers() == nil {
		err = ErrRegistersNil
		return
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", thread.Name, msg)
		},
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, sc.predeclared())
	return
}

// Run is a shortcut for New(prog).Exec(filename, src).
func Run(prog *program.Program, filename string, src any) error {
	_, err := New(prog).Exec(filename, src)
	return err
}

// predeclared binds the registers, MODE, and the builtins.
func (sc *Script) predeclared() starlark.StringDict {
	regs := internal.IterSeq2Map(sc.Program.Registers().All(), func(reg *register.Register) starlark.Value {
		return Register{reg}
	})

	return starlark.StringDict(maps.Collect(internal.IterSeq2Concat(
		regs,
		sc.builtins(),
		maps.All(map[string]starlark.Value{
			"MODE": starlark.MakeInt(int(sc.Program.Mode)),
		}),
	)))
}

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

func (sc *Script) builtins() iter.Seq2[string, starlark.Value] {
	return func(yield func(string, starlark.Value) bool) {
		for name := range mnemonic.Names() {
			if !yield(name, starlark.NewBuiltin(name, sc.kindBuiltin)) {
				return
			}
		}

		for name, fn := range map[string]builtinFunc{
			"emit":   sc.emitBuiltin,
			"indent": sc.indentBuiltin,
			"reg":    sc.regBuiltin,
		} {
			if !yield(name, starlark.NewBuiltin(name, fn)) {
				return
			}
		}
	}
}

// kindBuiltin implements add(...), inc(...) and the other kinds.
func (sc *Script) kindBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return sc.insert(b.Name(), b.Name(), args, kwargs)
}

// emitBuiltin implements emit(name, *operands).
func (sc *Script) emitBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(args) == 0 {
		return nil, ErrNameMissing
	}

	name, ok := starlark.AsString(args[0])
	if !ok || len(name) == 0 {
		return nil, ErrNameMissing
	}

	return sc.insert(b.Name(), name, args[1:], kwargs)
}

// indentBuiltin implements indent(text).
func (sc *Script) indentBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text)
	if err != nil {
		return nil, err
	}

	sc.Program.Indent = text
	return starlark.None, nil
}

// regBuiltin implements reg(name), a case insensitive register lookup.
func (sc *Script) regBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	reg := sc.Program.Registers().Get(name, nil)
	if reg == nil {
		return starlark.None, nil
	}

	return Register{reg}, nil
}

func (sc *Script) insert(builtin string, name string, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var comment starlark.Value = starlark.None
	enable := true

	err := starlark.UnpackArgs(builtin, nil, kwargs, "comment?", &comment, "enable_comment?", &enable)
	if err != nil {
		return nil, err
	}

	operands := make([]any, len(args))
	for n, arg := range args {
		operands[n] = operand(arg)
	}

	m, err := mnemonic.NewNamed(name, operands...)
	if err != nil {
		return nil, err
	}

	switch c := comment.(type) {
	case starlark.NoneType:
	case starlark.String:
		m.Comment = string(c)
	default:
		return nil, ErrCommentType
	}
	m.CommentEnabled = enable

	if sc.Verbose {
		log.Printf("%v: %v %v", sc.Program.Filename, name, operands)
	}

	sc.Program.Insert(m)

	return starlark.None, nil
}
