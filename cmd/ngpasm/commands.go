package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/ezrec/ngpasm/config"
	"github.com/ezrec/ngpasm/disasm"
	"github.com/ezrec/ngpasm/program"
	"github.com/ezrec/ngpasm/register"
	"github.com/ezrec/ngpasm/script"
)

// build runs a script and writes its listing to opts.Output, or to stdout
// when the output is empty or "-".
func build(filename string, opts config.Options, stdout io.Writer) (err error) {
	prog := program.New(listingName(filename, opts.Output), opts.Mode)
	prog.Indent = opts.Indent
	prog.Verbose = opts.Verbose

	sc := script.New(prog)
	sc.Verbose = opts.Verbose
	_, err = sc.Exec(filename, nil)
	if err != nil {
		return
	}

	if !opts.Comments {
		prog.SetComments(false)
	}

	// Render before creating the output, so a failure leaves no file behind.
	listing, err := prog.Generate()
	if err != nil {
		return
	}
	if len(listing) != 0 {
		listing += "\n"
	}

	out := stdout
	if len(opts.Output) != 0 && opts.Output != "-" {
		var ouf *os.File
		ouf, err = os.Create(opts.Output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()
		out = ouf
	}

	_, err = io.WriteString(out, listing)
	return
}

// disassemble lists the instructions of a raw machine code file.
func disassemble(filename string, opts config.Options, stdout io.Writer) (err error) {
	code, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	prog := program.New(filename, opts.Mode)
	prog.Indent = opts.Indent
	prog.Verbose = opts.Verbose

	_, err = disasm.Decode(prog, code)
	if err != nil {
		return
	}

	prog.SetComments(opts.Comments)

	_, err = prog.WriteTo(stdout)
	return
}

// listingName derives the program file name from the script name.
func listingName(filename, output string) string {
	if len(output) != 0 && output != "-" {
		return output
	}

	return strings.TrimSuffix(filename, ".star") + ".asm"
}

// regs prints the register hierarchy of mode as a tree.
func regs(mode string, stdout io.Writer) error {
	set := register.Get(mode)
	if set == nil {
		return config.ErrModeInvalid
	}

	tree := treeprint.NewWithRoot(fmt.Sprintf("%v-bit", set.Mode()))
	for _, reg := range set.Roots() {
		addRegister(tree, set, reg)
	}

	_, err := io.WriteString(stdout, tree.String())
	return err
}

func addRegister(tree treeprint.Tree, set *register.Set, reg *register.Register) {
	children := set.Children(reg)
	if len(children) == 0 {
		tree.AddNode(describe(reg))
		return
	}

	branch := tree.AddBranch(describe(reg))
	for _, child := range children {
		addRegister(branch, set, child)
	}
}

func describe(reg *register.Register) string {
	text := fmt.Sprintf("%v (%v)", reg.Name(), reg.Size())
	if aliases := reg.Aliases(); len(aliases) != 0 {
		text += " = " + strings.Join(aliases, ", ")
	}

	return text
}

// modes lists the supported architecture modes, one per line.
func modes(stdout io.Writer) (err error) {
	for mode := range register.Modes() {
		set := register.New(mode)
		_, err = fmt.Fprintf(stdout, "%v\t%v registers\n", mode, set.Len())
		if err != nil {
			return
		}
	}

	return
}
