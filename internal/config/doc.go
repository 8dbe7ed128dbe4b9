// Package config loads and merges procon configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (PROCON_DELIMITER, PROCON_LOG_LEVEL, PROCON_SORT,
//     PROCON_INDENT, PROCON_COLOR)
//  3. Config file ($XDG_CONFIG_HOME/procon/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write one back, and
// [SetField] to update a single key.
package config
