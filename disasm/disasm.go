// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package disasm decodes x86 machine code into program mnemonics.
//
// Instruction prefixes are not rendered.
package disasm

import (
	"log"
	"strings"

	"golang.org/x/arch/x86/x86asm"

	"github.com/ezrec/ngpasm/mnemonic"
	"github.com/ezrec/ngpasm/program"
	"github.com/ezrec/ngpasm/register"
)

// Decode appends one mnemonic per instruction of code to the program,
// decoding in the program's mode. It returns the number of bytes
// consumed; on error, the instructions before the failing one remain
// in the program.
func Decode(prog *program.Program, code []byte) (n int, err error) {
	regs := prog.Registers()
	if regs == nil {
		err = ErrModeInvalid
		return
	}

	for n < len(code) {
		var inst x86asm.Inst
		inst, err = x86asm.Decode(code[n:], int(prog.Mode))
		if err == nil && inst.Op == 0 {
			// A lone prefix, decoded when the instruction it prefixes
			// is cut short.
			err = x86asm.ErrTruncated
		}
		if err != nil {
			err = &ErrDecode{Offset: n, Err: err}
			return
		}

		if prog.Verbose {
			log.Printf("%v:%#04x: %v", prog.Filename, n, inst)
		}

		prog.Insert(Mnemonic(regs, inst))
		n += inst.Len
	}

	return
}

// Mnemonic converts a decoded instruction. Registers are taken from regs
// where possible.
func Mnemonic(regs *register.Set, inst x86asm.Inst) *mnemonic.Mnemonic {
	name := strings.ToLower(inst.Op.String())

	var operands []any
	for _, arg := range inst.Args {
		if arg == nil {
			break
		}
		operands = append(operands, operand(regs, arg))
	}

	m, err := mnemonic.NewNamed(name, operands...)
	if err != nil {
		// Decoded forms may not match the registered kind, as for the
		// single operand div.
		m = mnemonic.NewBasic(name, operands...)
	}

	return m
}

func operand(regs *register.Set, arg x86asm.Arg) any {
	switch a := arg.(type) {
	case x86asm.Reg:
		reg := regs.Machine(a)
		if reg == nil {
			return a.String()
		}
		return reg
	case x86asm.Imm:
		return int64(a)
	case x86asm.Rel:
		return int64(a)
	}

	return arg.String()
}
