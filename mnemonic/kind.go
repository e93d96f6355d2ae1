package mnemonic

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Kind is the behaviour shared by every instruction of one sort.
type Kind interface {
	// Validate checks the operand count of a mnemonic at construction.
	Validate(name string, count int) error
	// DefaultComment explains the instruction, given its formatted operands.
	DefaultComment(name string, operands []string) string
}

type generic struct{}

// Generic accepts any operand count, and describes the instruction by the
// number of operands it has.
var Generic Kind = generic{}

func (generic) Validate(name string, count int) error {
	return nil
}

func (generic) DefaultComment(name string, operands []string) string {
	instruction := strings.ToUpper(name)

	switch len(operands) {
	case 0:
		return fmt.Sprintf("%v operation.", instruction)
	case 1:
		return fmt.Sprintf("%v operand %v.", instruction, operands[0])
	case 2:
		return fmt.Sprintf("%v from %v to %v.", instruction, operands[1], operands[0])
	default:
		return fmt.Sprintf("%v with %v operands.", instruction, len(operands))
	}
}

// Fixed is an instruction kind with an exact operand count.
//
// Template is a fmt format; %[1]v is the first operand, %[2]v the second.
type Fixed struct {
	Operands int
	Template string
}

func (fx Fixed) Validate(name string, count int) error {
	if count != fx.Operands {
		return ErrOperandCount{Name: name, Required: fx.Operands, Given: count}
	}

	return nil
}

func (fx Fixed) DefaultComment(name string, operands []string) string {
	args := make([]any, len(operands))
	for n, op := range operands {
		args[n] = op
	}

	return fmt.Sprintf(fx.Template, args...)
}

// Built-in kinds, registered under their lower-case instruction names.
var (
	Add  Kind = Fixed{2, "Adding the %[2]v value to the %[1]v"}
	Sub  Kind = Fixed{2, "Subtract the %[2]v value from the %[1]v"}
	Div  Kind = Fixed{2, "Dividing the %[2]v value to the %[1]v"}
	Mul  Kind = Fixed{2, "Multiplying the %[2]v value to the %[1]v"}
	Inc  Kind = Fixed{1, "Increment %[1]v"}
	Dec  Kind = Fixed{1, "Decrement %[1]v"}
	Mov  Kind = Fixed{2, "Moving the %[2]v value into the %[1]v"}
	Push Kind = Fixed{1, "Pushing %[1]v onto the stack"}
	Pop  Kind = Fixed{1, "Popping the stack into %[1]v"}
)

var (
	kindLock sync.RWMutex
	kinds    = map[string]Kind{
		"add":  Add,
		"sub":  Sub,
		"div":  Div,
		"mul":  Mul,
		"inc":  Inc,
		"dec":  Dec,
		"mov":  Mov,
		"push": Push,
		"pop":  Pop,
	}
)

// Register adds a new named instruction kind.
func Register(name string, kind Kind) error {
	if kind == nil || len(name) == 0 {
		return ErrKindInvalid
	}

	name = strings.ToLower(name)

	kindLock.Lock()
	defer kindLock.Unlock()

	if _, ok := kinds[name]; ok {
		return ErrKindDuplicate
	}
	kinds[name] = kind

	return nil
}

// Lookup returns the kind registered for name, or Generic.
func Lookup(name string) Kind {
	kindLock.RLock()
	defer kindLock.RUnlock()

	kind, ok := kinds[strings.ToLower(name)]
	if !ok {
		return Generic
	}

	return kind
}

// Names iterates over the registered kind names in sorted order.
func Names() iter.Seq[string] {
	kindLock.RLock()
	names := slices.Sorted(maps.Keys(kinds))
	kindLock.RUnlock()

	return slices.Values(names)
}
