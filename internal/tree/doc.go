// Package tree holds the format-agnostic model every conversion goes through.
//
// A [Value] is a closed sum of scalar kinds inferred from text with [Parse].
// A [Node] is one segment of a dotted key path; interior nodes carry a
// [KindNone] value and terminal nodes carry a scalar. A [Forest] is the
// ordered set of roots produced by one read, built with [Forest.Merge] so
// that keys sharing a prefix end up under the same ancestor.
package tree
