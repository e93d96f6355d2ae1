package mnemonic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/ngpasm/translate"
)

var f = translate.From

var (
	ErrValidation    = errors.New(f("validation failed"))
	ErrType          = errors.New(f("invalid operand type"))
	ErrKindDuplicate = errors.New(f("mnemonic kind duplicated"))
	ErrKindInvalid   = errors.New(f("mnemonic kind invalid"))
)

// ErrOperandCount reports a mnemonic built with the wrong number of operands.
type ErrOperandCount struct {
	Name     string
	Required int
	Given    int
}

func (err ErrOperandCount) Error() string {
	return f("mnemonic %v requires %v operands, but got %v", strings.ToUpper(err.Name), strconv.Itoa(err.Required), strconv.Itoa(err.Given))
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrValidation
}

// ErrOperandType reports an operand that is not a register, string or integer.
type ErrOperandType struct {
	Position int    // 1-based operand position.
	Type     string // Go type of the operand.
}

func (err ErrOperandType) Error() string {
	return f("operand %v has invalid type %v; allowed types: register, string, integer", strconv.Itoa(err.Position), err.Type)
}

func (err ErrOperandType) Is(target error) bool {
	return target == ErrType
}
