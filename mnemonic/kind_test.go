package mnemonic

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ngpasm/register"
)

func registers(t *testing.T, names ...string) (regs []any) {
	set := register.New(register.MODE_16)
	for _, name := range names {
		reg, err := set.Index(name)
		if err != nil {
			t.Fatal(err)
		}
		regs = append(regs, reg)
	}
	return
}

func TestKind_DefaultComment(t *testing.T) {
	assert := assert.New(t)

	ops := registers(t, "AX", "BX")

	table := []struct {
		make     func(...any) (*Mnemonic, error)
		operands []any
		expected string
	}{
		{NewAdd, ops, "Adding the BX value to the AX"},
		{NewSub, ops, "Subtract the BX value from the AX"},
		{NewDiv, ops, "Dividing the BX value to the AX"},
		{NewMul, ops, "Multiplying the BX value to the AX"},
		{NewInc, ops[:1], "Increment AX"},
		{NewDec, ops[:1], "Decrement AX"},
		{NewMov, ops, "Moving the BX value into the AX"},
		{NewPush, ops[:1], "Pushing AX onto the stack"},
		{NewPop, ops[1:], "Popping the stack into BX"},
	}

	for _, entry := range table {
		m, err := entry.make(entry.operands...)
		if assert.NoError(err, entry.expected) {
			assert.Equal(entry.expected, m.DefaultComment())
		}
	}
}

func TestKind_OperandCount(t *testing.T) {
	assert := assert.New(t)

	ops := registers(t, "AX", "BX", "CX")

	table := []struct {
		name     string
		make     func(...any) (*Mnemonic, error)
		required int
	}{
		{"add", NewAdd, 2},
		{"sub", NewSub, 2},
		{"div", NewDiv, 2},
		{"mul", NewMul, 2},
		{"inc", NewInc, 1},
		{"dec", NewDec, 1},
		{"mov", NewMov, 2},
		{"push", NewPush, 1},
		{"pop", NewPop, 1},
	}

	for _, entry := range table {
		for count := 0; count <= 3; count++ {
			var operands []any
			for n := range count {
				operands = append(operands, ops[n])
			}

			m, err := entry.make(operands...)
			if count == entry.required {
				assert.NoError(err)
				assert.Equal(count, len(m.Operands()))
				continue
			}

			assert.Nil(m)
			assert.ErrorIs(err, ErrValidation)
			assert.Contains(err.Error(), "operands")
			assert.Contains(err.Error(), strings.ToUpper(entry.name))

			var countErr ErrOperandCount
			if assert.True(errors.As(err, &countErr)) {
				assert.Equal(entry.name, countErr.Name)
				assert.Equal(entry.required, countErr.Required)
				assert.Equal(count, countErr.Given)
			}
		}
	}

	// An integer operand still counts.
	_, err := NewAdd(10)
	assert.ErrorIs(err, ErrValidation)
}

func TestKind_Construct(t *testing.T) {
	assert := assert.New(t)

	ops := registers(t, "AX", "BX")

	add, err := NewAdd(ops...)
	assert.NoError(err)
	line, err := add.Construct("    ")
	assert.NoError(err)
	assert.Equal("    add AX, BX  ; Adding the BX value to the AX", line)

	add.Comment = "Custom addition"
	line, err = add.Construct("    ")
	assert.NoError(err)
	assert.Equal("    add AX, BX  ; Custom addition", line)

	inc, err := NewInc(ops[0])
	assert.NoError(err)
	inc.CommentEnabled = false
	line, err = inc.Construct("    ")
	assert.NoError(err)
	assert.Equal("    inc AX", line)
	assert.NotContains(line, ";")

	inc.CommentEnabled = true
	line, err = inc.Construct("  ")
	assert.NoError(err)
	assert.Equal("  inc AX  ; Increment AX", line)

	mul, err := NewMul(ops...)
	assert.NoError(err)
	line, err = mul.Construct("    ")
	assert.NoError(err)
	assert.True(strings.HasPrefix(line, "    mul AX, BX"))
}

func TestKind_InvalidOperandTypes(t *testing.T) {
	assert := assert.New(t)

	ops := registers(t, "AX", "BX")

	table := []struct {
		make     func(...any) (*Mnemonic, error)
		operands []any
	}{
		{NewAdd, []any{nil, ops[1]}},
		{NewSub, []any{ops[0], 3.14}},
		{NewDiv, []any{struct{}{}, ops[1]}},
		{NewMul, []any{ops[0], []int{1, 2}}},
		{NewInc, []any{map[int]bool{}}},
		{NewDec, []any{3.14}},
	}

	for _, entry := range table {
		m, err := entry.make(entry.operands...)
		if !assert.NoError(err) {
			continue
		}

		_, err = m.Construct("")
		assert.ErrorIs(err, ErrType)
	}
}

func TestFixed_Extension(t *testing.T) {
	assert := assert.New(t)

	shl := Fixed{Operands: 2, Template: "Shifting %[1]v left by %[2]v"}

	m, err := New(shl, "shl", "EAX", 4)
	assert.NoError(err)
	line, err := m.Construct("")
	assert.NoError(err)
	assert.Equal("shl EAX, 4  ; Shifting EAX left by 4", line)

	_, err = New(shl, "shl", "EAX")
	assert.ErrorIs(err, ErrValidation)
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	neg := Fixed{Operands: 1, Template: "Negating %[1]v"}
	assert.NoError(Register("NEG", neg))
	t.Cleanup(func() {
		kindLock.Lock()
		delete(kinds, "neg")
		kindLock.Unlock()
	})
	assert.ErrorIs(Register("neg", neg), ErrKindDuplicate)
	assert.ErrorIs(Register("add", neg), ErrKindDuplicate)
	assert.ErrorIs(Register("", neg), ErrKindInvalid)
	assert.ErrorIs(Register("xyz", nil), ErrKindInvalid)

	assert.Equal(neg, Lookup("neg"))
	assert.Contains(slices.Collect(Names()), "neg")

	m, err := NewNamed("neg", "AX")
	assert.NoError(err)
	line, err := m.Construct("")
	assert.NoError(err)
	assert.Equal("neg AX  ; Negating AX", line)
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Add, Lookup("add"))
	assert.Equal(Add, Lookup("ADD"))
	assert.Equal(Generic, Lookup("nop"))

	names := slices.Collect(Names())
	assert.True(slices.IsSorted(names))
	for _, name := range []string{"add", "sub", "div", "mul", "inc", "dec", "mov", "push", "pop"} {
		assert.Contains(names, name)
	}

	m, err := NewNamed("nop")
	assert.NoError(err)
	line, err := m.Construct("")
	assert.NoError(err)
	assert.Equal("nop  ; NOP operation.", line)

	_, err = NewNamed("add", "AX")
	assert.ErrorIs(err, ErrValidation)
}
