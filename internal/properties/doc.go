// Package properties tokenizes Java-style .properties text into logical
// key/value lines.
//
// The [Tokenizer] is a single pass state machine: it skips blank lines and
// comments, splits each line at the first [Delimiter], and joins continuation
// lines whose value ends in an odd number of backslashes. Duplicate keys keep
// the last value. Malformed lines never fail the run.
package properties
