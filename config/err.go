package config

import (
	"errors"

	"github.com/ezrec/ngpasm/translate"
)

var f = translate.From

var (
	ErrNotMapping  = errors.New(f("configuration is not a mapping"))
	ErrTypeInvalid = errors.New(f("configuration type invalid"))
	ErrModeInvalid = errors.New(f("architecture mode invalid"))
)

// ErrFile locates a configuration file that could not be used.
type ErrFile struct {
	Name string
	Type Type
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v (%v) %v", err.Name, err.Type.String(), err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
