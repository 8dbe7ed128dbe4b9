package format

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure.
type Kind string

const (
	KindIO              Kind = "io"
	KindParse           Kind = "parse"
	KindUnsupportedType Kind = "unsupported_type"
	KindSerialization   Kind = "serialization"
)

// Error is a failure while reading or writing a format.
type Error struct {
	Kind   Kind
	Format Format
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Format == "":
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	case e.Kind == KindIO:
		return fmt.Sprintf("%s: %v", e.Format, e.Err)
	default:
		return fmt.Sprintf("%s %s error: %v", e.Format, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ParseError wraps err as a parse failure of input in f.
func ParseError(f Format, err error) error {
	return &Error{Kind: KindParse, Format: f, Err: err}
}

// IOError wraps err as an I/O failure.
func IOError(err error) error {
	return &Error{Kind: KindIO, Err: err}
}

// UnsupportedTypeError reports a value that f cannot represent.
func UnsupportedTypeError(f Format, err error) error {
	return &Error{Kind: KindUnsupportedType, Format: f, Err: err}
}

// SerializationError wraps err as an encoding failure for f.
func SerializationError(f Format, err error) error {
	return &Error{Kind: KindSerialization, Format: f, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsParseError reports whether err is a parse failure.
func IsParseError(err error) bool { return KindOf(err) == KindParse }

// IsIOError reports whether err is an I/O failure.
func IsIOError(err error) bool { return KindOf(err) == KindIO }

// IsDataError reports whether err is caused by the data itself rather than
// by the environment.
func IsDataError(err error) bool {
	switch KindOf(err) {
	case KindParse, KindUnsupportedType, KindSerialization:
		return true
	}
	return false
}
