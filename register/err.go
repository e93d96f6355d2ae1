package register

import (
	"errors"
	"strconv"

	"github.com/ezrec/ngpasm/translate"
)

var f = translate.From

var (
	ErrValidation = errors.New(f("validation failed"))
	ErrNotFound   = errors.New(f("register not found"))
)

// ErrRegisterSize reports a register built with an unsupported bit width.
type ErrRegisterSize struct {
	Name string
	Size int
}

func (err ErrRegisterSize) Error() string {
	return f("invalid register size: %v bits for %v; must be 8, 16, 32 or 64 bits", strconv.Itoa(err.Size), err.Name)
}

func (err ErrRegisterSize) Is(target error) bool {
	return target == ErrValidation
}

// ErrRegisterParent reports a register whose parent is not wider than it.
type ErrRegisterParent struct {
	Name   string
	Parent string
}

func (err ErrRegisterParent) Error() string {
	return f("register %v must be narrower than its parent %v", err.Name, err.Parent)
}

func (err ErrRegisterParent) Is(target error) bool {
	return target == ErrValidation
}

// ErrRegisterNotFound reports an exact-key lookup miss.
type ErrRegisterNotFound struct {
	Key  string
	Mode Mode
}

func (err ErrRegisterNotFound) Error() string {
	return f("register '%v' not found in %v-bit mode", err.Key, err.Mode.String())
}

func (err ErrRegisterNotFound) Is(target error) bool {
	return target == ErrNotFound
}
