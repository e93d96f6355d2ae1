// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/ngpasm/config"
	"github.com/ezrec/ngpasm/register"
)

func main() {
	log.SetFlags(0)

	root := newRootCommand()
	root.SetArgs(os.Args[1:])

	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ngpasm",
		Short: "x86 assembly listing generator",
		Long: `Builds x86 assembly listings from Starlark scripts, for 16, 32 and
64-bit architecture modes.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newBuildCommand(), newDisasmCommand(), newRegsCommand(), newModesCommand())

	return root
}

func newBuildCommand() *cobra.Command {
	var (
		configFile string
		mode       string
		output     string
		indent     string
		noComments bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "build [flags] script.star",
		Short: "Build an assembly listing from a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts := config.DefaultOptions()
			if len(configFile) != 0 {
				opts, err = config.Load(configFile)
				if err != nil {
					return
				}
			}

			opts, err = config.Environment(opts)
			if err != nil {
				return
			}

			// Flags given on the command line win over the configuration
			// file and the environment.
			flags := cmd.Flags()
			if flags.Changed("mode") {
				var ok bool
				opts.Mode, ok = register.ParseMode(mode)
				if !ok {
					err = config.ErrModeInvalid
					return
				}
			}
			if flags.Changed("output") {
				opts.Output = output
			}
			if flags.Changed("indent") {
				opts.Indent = indent
			}
			if flags.Changed("verbose") {
				opts.Verbose = verbose
			}
			if noComments {
				opts.Comments = false
			}

			return build(args[0], opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "configuration file (.json, .yaml or .toml)")
	flags.StringVarP(&mode, "mode", "m", register.MODE_64.String(), "architecture mode (16, 32 or 64)")
	flags.StringVarP(&output, "output", "o", "-", "listing output file")
	flags.StringVarP(&indent, "indent", "i", "", "instruction indent")
	flags.BoolVar(&noComments, "no-comments", false, "omit instruction comments")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")

	return cmd
}

func newDisasmCommand() *cobra.Command {
	var (
		mode       string
		indent     string
		noComments bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "disasm [flags] code.bin",
		Short: "List the instructions of raw machine code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts := config.DefaultOptions()
			opts.Indent = indent
			opts.Comments = !noComments
			opts.Verbose = verbose

			var ok bool
			opts.Mode, ok = register.ParseMode(mode)
			if !ok {
				err = config.ErrModeInvalid
				return
			}

			return disassemble(args[0], opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&mode, "mode", "m", register.MODE_64.String(), "architecture mode (16, 32 or 64)")
	flags.StringVarP(&indent, "indent", "i", "", "instruction indent")
	flags.BoolVar(&noComments, "no-comments", false, "omit instruction comments")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")

	return cmd
}

func newRegsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regs [mode]",
		Short: "Print the register hierarchy of a mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := register.MODE_64.String()
			if len(args) != 0 {
				mode = args[0]
			}

			return regs(mode, cmd.OutOrStdout())
		},
	}
}

func newModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the supported architecture modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return modes(cmd.OutOrStdout())
		},
	}
}
