package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/ngpasm/register"
)

// Register exposes a *register.Register to Starlark.
type Register struct {
	*register.Register
}

var (
	_ starlark.Value    = Register{}
	_ starlark.HasAttrs = Register{}
)

var registerAttrs = []string{"aliases", "hierarchy", "name", "parent", "size"}

func (reg Register) String() string {
	return reg.Name()
}

func (reg Register) Type() string {
	return "register"
}

func (reg Register) Freeze() {}

func (reg Register) Truth() starlark.Bool {
	return starlark.True
}

func (reg Register) Hash() (uint32, error) {
	return starlark.String(reg.Name()).Hash()
}

func (reg Register) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(reg.Name()), nil
	case "size":
		return starlark.MakeInt(reg.Size()), nil
	case "parent":
		parent := reg.Parent()
		if parent == nil {
			return starlark.None, nil
		}
		return Register{parent}, nil
	case "aliases":
		var aliases []starlark.Value
		for _, alias := range reg.Aliases() {
			aliases = append(aliases, starlark.String(alias))
		}
		return starlark.NewList(aliases), nil
	case "hierarchy":
		var hier []starlark.Value
		for _, r := range reg.FullHierarchy() {
			hier = append(hier, Register{r})
		}
		return starlark.NewList(hier), nil
	}

	return nil, nil
}

func (reg Register) AttrNames() []string {
	return registerAttrs
}

// operand converts a Starlark value into a mnemonic operand.
//
// Values without a Go counterpart are passed through unchanged, so that
// rendering reports them as invalid operands.
func operand(value starlark.Value) any {
	switch v := value.(type) {
	case Register:
		return v.Register
	case starlark.String:
		return string(v)
	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return v.String()
		}
		return int(i)
	case starlark.NoneType:
		return nil
	}

	return value
}
