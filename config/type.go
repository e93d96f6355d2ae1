package config

import (
	"path/filepath"
	"strings"
)

// Type is a configuration file format.
type Type int

//go:generate go tool stringer -linecomment -type=Type
const (
	TYPE_JSON = Type(0) // json
	TYPE_YAML = Type(1) // yaml
	TYPE_TOML = Type(2) // toml
)

// DetectByExtension maps a file extension, with or without its leading
// dot, to a Type. Unknown extensions are treated as JSON.
func DetectByExtension(ext string) Type {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return TYPE_YAML
	case "toml":
		return TYPE_TOML
	default:
		return TYPE_JSON
	}
}

// DetectByFilename maps a file name to a Type by its extension.
func DetectByFilename(name string) Type {
	return DetectByExtension(filepath.Ext(name))
}
