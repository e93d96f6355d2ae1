package disasm

import (
	"errors"

	"github.com/ezrec/ngpasm/translate"
)

var f = translate.From

var (
	ErrModeInvalid = errors.New(f("architecture mode invalid"))
)

// ErrDecode locates machine code that could not be decoded.
type ErrDecode struct {
	Offset int // Byte offset of the instruction.
	Err    error
}

func (err *ErrDecode) Error() string {
	return f("offset %#04x: %v", err.Offset, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
