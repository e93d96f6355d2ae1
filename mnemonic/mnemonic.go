package mnemonic

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/ngpasm/register"
)

// Mnemonic is a single assembly instruction.
//
// Operands are fixed at construction. Each must be a *register.Register, a
// string or an integer; anything else is only reported by Construct.
type Mnemonic struct {
	Comment        string // Explicit comment. If empty, the default comment is used.
	CommentEnabled bool   // If set, Construct appends the comment.

	name     string
	operands []any
	kind     Kind
}

// New creates a mnemonic of the given kind, validating its operand count.
func New(kind Kind, name string, operands ...any) (m *Mnemonic, err error) {
	if kind == nil {
		kind = Generic
	}

	err = kind.Validate(name, len(operands))
	if err != nil {
		return
	}

	m = &Mnemonic{
		CommentEnabled: true,
		name:           name,
		operands:       slices.Clone(operands),
		kind:           kind,
	}

	return
}

// NewBasic creates a mnemonic of the Generic kind.
func NewBasic(name string, operands ...any) (m *Mnemonic) {
	m, _ = New(Generic, name, operands...)
	return
}

// NewNamed creates a mnemonic of the kind registered for name.
func NewNamed(name string, operands ...any) (*Mnemonic, error) {
	return New(Lookup(name), name, operands...)
}

// NewAdd through NewPop create a mnemonic of the matching built-in kind.
func NewAdd(operands ...any) (*Mnemonic, error) { return New(Add, "add", operands...) }
func NewSub(operands ...any) (*Mnemonic, error) { return New(Sub, "sub", operands...) }
func NewDiv(operands ...any) (*Mnemonic, error) { return New(Div, "div", operands...) }
func NewMul(operands ...any) (*Mnemonic, error) { return New(Mul, "mul", operands...) }
func NewInc(operands ...any) (*Mnemonic, error) { return New(Inc, "inc", operands...) }
func NewDec(operands ...any) (*Mnemonic, error) { return New(Dec, "dec", operands...) }
func NewMov(operands ...any) (*Mnemonic, error) { return New(Mov, "mov", operands...) }
func NewPush(operands ...any) (*Mnemonic, error) { return New(Push, "push", operands...) }
func NewPop(operands ...any) (*Mnemonic, error) { return New(Pop, "pop", operands...) }

// Name returns the instruction text.
func (m *Mnemonic) Name() string {
	return m.name
}

// Operands returns a copy of the operands.
func (m *Mnemonic) Operands() []any {
	return slices.Clone(m.operands)
}

// Kind returns the instruction kind.
func (m *Mnemonic) Kind() Kind {
	return m.kind
}

// DefaultComment returns the comment used when Comment is empty.
func (m *Mnemonic) DefaultComment() string {
	ops := make([]string, len(m.operands))
	for n, op := range m.operands {
		text, err := formatOperand(n+1, op)
		if err != nil {
			text = fmt.Sprint(op)
		}
		ops[n] = text
	}

	return m.kind.DefaultComment(m.name, ops)
}

// formatOperand renders one operand, or reports its type as invalid.
func formatOperand(position int, op any) (text string, err error) {
	switch v := op.(type) {
	case *register.Register:
		if v == nil {
			err = ErrOperandType{Position: position, Type: "nil register"}
			return
		}
		text = v.Name()
	case string:
		text = v
	case int:
		text = strconv.Itoa(v)
	case int8, int16, int32, int64:
		text = fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		text = fmt.Sprintf("%d", v)
	default:
		err = ErrOperandType{Position: position, Type: fmt.Sprintf("%T", op)}
	}

	return
}

// Construct renders the instruction as a line of assembly source, prefixed
// by indent. It does not modify the mnemonic.
func (m *Mnemonic) Construct(indent string) (line string, err error) {
	ops := make([]string, len(m.operands))
	for n, op := range m.operands {
		ops[n], err = formatOperand(n+1, op)
		if err != nil {
			return
		}
	}

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(m.name)
	if len(ops) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(ops, ", "))
	}

	if m.CommentEnabled {
		comment := m.Comment
		if len(comment) == 0 {
			comment = m.kind.DefaultComment(m.name, ops)
		}
		sb.WriteString("  ; ")
		sb.WriteString(comment)
	}

	line = sb.String()
	return
}
