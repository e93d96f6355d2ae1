package script

import (
	"errors"

	"github.com/ezrec/ngpasm/translate"
)

var f = translate.From

var (
	ErrNameMissing  = errors.New(f("instruction name missing"))
	ErrCommentType  = errors.New(f("comment must be a string or None"))
	ErrRegistersNil = errors.New(f("program has no register set"))
)
