package program

import (
	"strconv"

	"github.com/ezrec/ngpasm/translate"
)

var f = translate.From

// ErrInstruction locates a mnemonic that failed to render.
type ErrInstruction struct {
	Index int    // 0-based position in the program.
	Name  string // Instruction text.
	Err   error
}

func (err *ErrInstruction) Error() string {
	return f("instruction %v (%v) %v", strconv.Itoa(err.Index), err.Name, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
