package tree

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNone Kind = iota
	KindBoolean
	KindNumeric
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBoolean:
		return "boolean"
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the scalar payload of a node. The zero Value is KindNone, the
// marker for nodes that have children instead of a scalar.
type Value struct {
	kind  Kind
	b     bool
	text  string
	items []string
}

// None returns the interior-node marker.
func None() Value { return Value{} }

// Boolean returns a boolean value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Numeric returns a numeric value that keeps its source text.
func Numeric(text string) Value { return Value{kind: KindNumeric, text: text} }

// String returns a string value.
func String(text string) Value { return Value{kind: KindString, text: text} }

// Object returns an opaque embedded-object value.
func Object(text string) Value { return Value{kind: KindObject, text: text} }

// Array returns an array value. The elements are copied.
func Array(items ...string) Value {
	return Value{kind: KindArray, items: slices.Clone(items)}
}

// Parse infers a Value from raw text. Checks run in order and the first match
// wins: boolean, embedded object, comma separated array, numeric, string.
func Parse(raw string) Value {
	if strings.EqualFold(raw, "true") || strings.EqualFold(raw, "false") {
		return Boolean(strings.EqualFold(raw, "true"))
	}
	if strings.HasPrefix(raw, "{") {
		return Object(raw)
	}
	if strings.Contains(raw, ",") {
		items := []string{}
		for _, part := range strings.Split(raw, ",") {
			// leading and trailing commas leave empty parts
			if part != "" {
				items = append(items, part)
			}
		}
		return Value{kind: KindArray, items: items}
	}
	if IsNumeric(raw) {
		return Numeric(raw)
	}
	return String(raw)
}

// IsNumeric reports whether s is a finite decimal float or unsigned integer
// literal. Hexadecimal forms and NaN/Inf spellings are not numeric.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return true
	}
	if strings.ContainsAny(s, "xXnN_") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the interior-node marker.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Bool returns the payload of a boolean value.
func (v Value) Bool() bool { return v.b }

// Text returns the payload of a numeric, string or object value.
func (v Value) Text() string { return v.text }

// Items returns a copy of the elements of an array value.
func (v Value) Items() []string { return slices.Clone(v.items) }

// String renders v the way the properties format writes it.
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumeric, KindString, KindObject:
		return v.text
	case KindArray:
		return strings.Join(v.items, ",")
	default:
		return ""
	}
}

// Equal reports whether v and o have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == o.b
	case KindNumeric, KindString, KindObject:
		return v.text == o.text
	case KindArray:
		return slices.Equal(v.items, o.items)
	default:
		return true
	}
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	if v.kind == KindNone {
		return "None"
	}
	if v.kind == KindArray {
		return "Array(" + strconv.Quote(v.String()) + ")"
	}
	return v.kind.String() + "(" + strconv.Quote(v.String()) + ")"
}
