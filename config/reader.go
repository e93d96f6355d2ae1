// Package config reads JSON, YAML and TOML configuration files into a
// mapping, and decodes listing options from that mapping.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Read loads a configuration file, detecting its type from its name.
func Read(name string) (map[string]any, error) {
	return ReadType(name, DetectByFilename(name))
}

// ReadType loads a configuration file of a known type.
//
// A missing file yields an empty mapping. A file whose top level value is
// not a mapping (a list, a scalar, null, or an empty YAML document) fails
// with ErrNotMapping.
func ReadType(name string, typ Type) (cfg map[string]any, err error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = map[string]any{}
		err = nil
		return
	}
	if err != nil {
		return
	}

	cfg, err = Parse(data, typ)
	if err != nil {
		err = &ErrFile{Name: name, Type: typ, Err: err}
		cfg = nil
	}

	return
}

// Parse decodes configuration text of the given type.
func Parse(data []byte, typ Type) (cfg map[string]any, err error) {
	var value any

	switch typ {
	case TYPE_JSON:
		err = json.Unmarshal(data, &value)
	case TYPE_YAML:
		err = yaml.Unmarshal(data, &value)
	case TYPE_TOML:
		table := map[string]any{}
		_, err = toml.Decode(string(data), &table)
		value = table
	default:
		err = ErrTypeInvalid
	}
	if err != nil {
		return
	}

	cfg, ok := value.(map[string]any)
	if !ok {
		err = ErrNotMapping
		return
	}

	return
}
