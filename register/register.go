package register

import (
	"slices"
)

// Register is a named CPU register. It is never modified after construction.
type Register struct {
	name    string
	size    int
	aliases []string
	parent  *Register
}

// NewRegister creates a register of the given bit size.
//
// parent, if not nil, is the wider register this one is a part of. Since a
// parent must exist before its children, hierarchies cannot form cycles,
// and sizes strictly increase towards the root.
func NewRegister(name string, size int, aliases []string, parent *Register) (reg *Register, err error) {
	switch size {
	case 8, 16, 32, 64:
	default:
		err = ErrRegisterSize{Name: name, Size: size}
		return
	}

	if parent != nil && parent.size <= size {
		err = ErrRegisterParent{Name: name, Parent: parent.name}
		return
	}

	reg = &Register{
		name:   name,
		size:   size,
		parent: parent,
	}

	for _, alias := range aliases {
		if !slices.Contains(reg.aliases, alias) {
			reg.aliases = append(reg.aliases, alias)
		}
	}

	return
}

// Name returns the canonical name.
func (reg *Register) Name() string {
	return reg.name
}

// Size returns the width in bits.
func (reg *Register) Size() int {
	return reg.size
}

// Aliases returns a copy of the alternate names.
func (reg *Register) Aliases() []string {
	return slices.Clone(reg.aliases)
}

// Parent returns the enclosing register, or nil.
func (reg *Register) Parent() *Register {
	return reg.parent
}

// FullHierarchy returns this register followed by each parent in turn.
func (reg *Register) FullHierarchy() (hier []*Register) {
	for current := reg; current != nil; current = current.parent {
		hier = append(hier, current)
	}

	return
}

// Root returns the widest register of the hierarchy.
func (reg *Register) Root() *Register {
	root := reg
	for root.parent != nil {
		root = root.parent
	}

	return root
}

// Contains returns true if other is reg, or a sub-register of reg.
func (reg *Register) Contains(other *Register) bool {
	if other == nil {
		return false
	}

	return slices.Contains(other.FullHierarchy(), reg)
}

func (reg *Register) String() string {
	return reg.name
}
