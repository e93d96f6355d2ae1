package config

import (
	"github.com/mitchellh/mapstructure"

	"github.com/ezrec/ngpasm/register"
)

// Options controls how a listing is produced.
type Options struct {
	Mode     register.Mode // Target architecture mode.
	Indent   string        // Prefix for every instruction line.
	Comments bool          // If set, instructions carry comments.
	Output   string        // Listing file name; empty or "-" for stdout.
	Verbose  bool          // If set, logs each rendered line.
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Mode:     register.MODE_64,
		Comments: true,
	}
}

type rawOptions struct {
	Mode     string `mapstructure:"mode"`
	Indent   string `mapstructure:"indent"`
	Comments *bool  `mapstructure:"comments"`
	Output   string `mapstructure:"output"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Decode fills Options from a configuration mapping, starting from
// DefaultOptions. Scalars are converted loosely, so a mode may be written
// as 64 or "64". Unknown keys are an error.
func Decode(cfg map[string]any) (opts Options, err error) {
	opts = DefaultOptions()

	var raw rawOptions
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return
	}

	err = decoder.Decode(cfg)
	if err != nil {
		return
	}

	if len(raw.Mode) != 0 {
		mode, ok := register.ParseMode(raw.Mode)
		if !ok {
			err = ErrModeInvalid
			return
		}
		opts.Mode = mode
	}

	opts.Indent = raw.Indent
	if raw.Comments != nil {
		opts.Comments = *raw.Comments
	}
	opts.Output = raw.Output
	opts.Verbose = raw.Verbose

	return
}

// Load reads a configuration file and decodes its Options.
func Load(name string) (opts Options, err error) {
	cfg, err := Read(name)
	if err != nil {
		return
	}

	return Decode(cfg)
}
