// Package reader parses properties, JSON and YAML text into a [tree.Forest].
//
// Each format has a [Reader]; [New] returns the one for a source format.
// [ParseInput] is the entry point used by conversions: with an explicit
// source format it runs that reader, otherwise it falls back to [Detect],
// which tries JSON, YAML and finally properties, keeping the first success.
//
// Scalars are typed with [tree.Parse] whatever their source type, so a JSON
// string "true" and a boolean true both become a boolean value. Arrays keep
// their scalar elements as text; nested containers inside arrays are dropped.
package reader
