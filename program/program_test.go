package program

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ngpasm/mnemonic"
	"github.com/ezrec/ngpasm/register"
)

// quiet builds a generic mnemonic with comments disabled.
func quiet(name string, operands ...any) *mnemonic.Mnemonic {
	m := mnemonic.NewBasic(name, operands...)
	m.CommentEnabled = false
	return m
}

func TestProgram_New(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	assert.Equal("test.asm", prog.Filename)
	assert.Equal(register.MODE_64, prog.Mode)
	assert.Equal(0, prog.Len())
	assert.Equal("", prog.Indent)
	assert.False(prog.Verbose)
}

func TestProgram_Registers(t *testing.T) {
	assert := assert.New(t)

	regs := New("test.asm", register.MODE_64).Registers()
	if !assert.NotNil(regs) {
		return
	}
	for _, name := range []string{"RAX", "EAX", "AL"} {
		reg, err := regs.Index(name)
		assert.NoError(err)
		assert.Equal(name, reg.Name())
	}

	table := map[register.Mode]string{
		register.MODE_16: "AX",
		register.MODE_32: "EAX",
		register.MODE_64: "RAX",
	}
	for mode, name := range table {
		reg, err := New("test.asm", mode).Registers().Index(name)
		assert.NoError(err)
		assert.Equal(name, reg.Name())
	}

	assert.Nil(New("test.asm", register.Mode(128)).Registers())
}

func TestProgram_Insert(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	nop := quiet("nop")
	prog.Insert(nop)
	assert.Equal(1, prog.Len())

	for n, m := range prog.Mnemonics() {
		assert.Equal(0, n)
		assert.Same(nop, m)
	}
}

func TestProgram_Generate_Empty(t *testing.T) {
	assert := assert.New(t)

	listing, err := New("test.asm", register.MODE_64).Generate()
	assert.NoError(err)
	assert.Equal("", listing)
}

func TestProgram_Generate(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	prog.Insert(quiet("ret"))
	listing, err := prog.Generate()
	assert.NoError(err)
	assert.Equal("ret", listing)

	prog = New("test.asm", register.MODE_64)
	prog.Insert(quiet("push", "RAX"), quiet("pop", "RBX"))
	listing, err = prog.Generate()
	assert.NoError(err)
	assert.Equal("push RAX\npop RBX", listing)
	assert.Equal(1, strings.Count(listing, "\n"))
}

func TestProgram_Generate_Indent(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	prog.Indent = "    "
	prog.Insert(quiet("mov", "RAX", "RBX"))
	listing, err := prog.Generate()
	assert.NoError(err)
	assert.Equal("    mov RAX, RBX", listing)
}

func TestProgram_Generate_Comments(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	prog.Insert(mnemonic.NewBasic("add", "RAX", 10))
	listing, err := prog.Generate()
	assert.NoError(err)
	assert.Contains(listing, "add RAX, 10")
	assert.Contains(listing, "; ADD from 10 to RAX.")
}

func TestProgram_SetComments(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	prog.Insert(mnemonic.NewBasic("push", "RAX"), quiet("pop", "RBX"))

	prog.SetComments(false)
	listing, err := prog.Generate()
	assert.NoError(err)
	assert.Equal("push RAX\npop RBX", listing)

	prog.SetComments(true)
	listing, err = prog.Generate()
	assert.NoError(err)
	assert.Equal("push RAX  ; PUSH operand RAX.\npop RBX  ; POP operand RBX.", listing)
}

func TestProgram_Generate_Example(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_64)
	regs := prog.Registers()
	bx, _ := regs.Index("BX")
	for _, name := range []string{"AX", "CX", "DX"} {
		dst, _ := regs.Index(name)
		add, err := mnemonic.NewAdd(dst, bx)
		assert.NoError(err)
		prog.Insert(add)
	}

	listing, err := prog.Generate()
	assert.NoError(err)
	assert.Equal(strings.Join([]string{
		"add AX, BX  ; Adding the BX value to the AX",
		"add CX, BX  ; Adding the BX value to the CX",
		"add DX, BX  ; Adding the BX value to the DX",
	}, "\n"), listing)
}

func TestProgram_Generate_Error(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_32)
	prog.Insert(quiet("nop"), quiet("push", 1.5), quiet("ret"))

	listing, err := prog.Generate()
	assert.Empty(listing)
	assert.ErrorIs(err, mnemonic.ErrType)

	var instErr *ErrInstruction
	if assert.True(errors.As(err, &instErr)) {
		assert.Equal(1, instErr.Index)
		assert.Equal("push", instErr.Name)
	}

	buf := &bytes.Buffer{}
	n, err := prog.WriteTo(buf)
	assert.Error(err)
	assert.Equal(int64(0), n)
	assert.Equal(0, buf.Len())
}

func TestProgram_Lines(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_16)
	prog.Insert(quiet("nop"), quiet("nop"), quiet("ret"))

	var lines []string
	for line, err := range prog.Lines() {
		assert.NoError(err)
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}
	assert.Equal([]string{"nop", "nop"}, lines)
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := New("test.asm", register.MODE_16)
	prog.Insert(quiet("push", "AX"), quiet("pop", "BX"))

	buf := &bytes.Buffer{}
	n, err := prog.WriteTo(buf)
	assert.NoError(err)
	assert.Equal("push AX\npop BX\n", buf.String())
	assert.Equal(int64(buf.Len()), n)

	buf.Reset()
	n, err = New("empty.asm", register.MODE_16).WriteTo(buf)
	assert.NoError(err)
	assert.Equal(int64(0), n)
	assert.Equal("", buf.String())
}

func TestErrInstruction_Error(t *testing.T) {
	assert := assert.New(t)

	err := &ErrInstruction{Index: 1000, Name: "push", Err: mnemonic.ErrType}
	assert.Contains(err.Error(), "instruction 1000 (push)")
	assert.ErrorIs(err, mnemonic.ErrType)
}
