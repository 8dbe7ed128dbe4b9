package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a configuration data format.
type Format string

const (
	Properties Format = "properties"
	JSON       Format = "json"
	YAML       Format = "yaml"
	TOML       Format = "toml"
)

// All lists the formats in the order they are presented to users.
var All = []Format{Properties, JSON, YAML, TOML}

// Parse resolves a format name or one of its aliases.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "properties", "props":
		return Properties, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want properties, json, yaml or toml)", name)
	}
}

// FromExtension maps a file name to its format by extension. ok is false for
// unknown or missing extensions.
func FromExtension(path string) (f Format, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties":
		return Properties, true
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	case ".toml":
		return TOML, true
	}
	return "", false
}

// Extension returns the file extension used for output files, without dot.
func (f Format) Extension() string {
	return string(f)
}

// Readable reports whether procon can parse input in f.
func (f Format) Readable() bool {
	return f == Properties || f == JSON || f == YAML
}

func (f Format) String() string { return string(f) }

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }
