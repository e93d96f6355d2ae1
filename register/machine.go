package register

import (
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// MachineName converts a decoder register name into catalog naming.
func MachineName(reg x86asm.Reg) string {
	name := reg.String()

	switch name {
	case "SPB":
		return "SPL"
	case "BPB":
		return "BPL"
	case "SIB":
		return "SIL"
	case "DIB":
		return "DIL"
	}

	// R8L through R15L are the R8D through R15D doublewords.
	if prefix, ok := strings.CutSuffix(name, "L"); ok && len(prefix) > 1 && prefix[0] == 'R' && prefix[1] >= '0' && prefix[1] <= '9' {
		return prefix + "D"
	}

	return name
}

// Machine returns the register for a decoder register, or nil if the set
// has no such register.
func (set *Set) Machine(reg x86asm.Reg) *Register {
	return set.Get(MachineName(reg), nil)
}
