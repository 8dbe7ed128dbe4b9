// Package cli wires together the Cobra command tree for the procon binary.
//
// It defines the root command and all subcommands (properties, json, yaml,
// toml, config, version), binds flags, reads configuration, runs the
// conversion and returns deterministic exit codes for scripting.
package cli
