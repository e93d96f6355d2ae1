package config

import (
	"github.com/xyproto/env/v2"

	"github.com/ezrec/ngpasm/register"
)

// Environment variables consulted by Environment.
const (
	ENV_MODE     = "NGPASM_MODE"
	ENV_INDENT   = "NGPASM_INDENT"
	ENV_COMMENTS = "NGPASM_COMMENTS"
	ENV_VERBOSE  = "NGPASM_VERBOSE"
)

// Environment overrides opts with the NGPASM_* variables that are set.
// The process environment is reloaded on every call.
func Environment(opts Options) (Options, error) {
	env.Load()

	if env.Has(ENV_MODE) {
		mode, ok := register.ParseMode(env.Str(ENV_MODE))
		if !ok {
			return opts, ErrModeInvalid
		}
		opts.Mode = mode
	}

	if env.Has(ENV_INDENT) {
		opts.Indent = env.Str(ENV_INDENT)
	}

	if env.Has(ENV_COMMENTS) {
		opts.Comments = env.Bool(ENV_COMMENTS)
	}

	if env.Has(ENV_VERBOSE) {
		opts.Verbose = env.Bool(ENV_VERBOSE)
	}

	return opts, nil
}
