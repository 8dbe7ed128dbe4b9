package properties

import (
	"fmt"
	"strings"
)

// Delimiter separates key from value on a properties line.
type Delimiter int

const (
	Equals Delimiter = iota
	Colon
	Whitespace
)

// ParseDelimiter accepts either the delimiter symbol or its name.
func ParseDelimiter(s string) (Delimiter, error) {
	switch strings.ToLower(s) {
	case "=", "equals":
		return Equals, nil
	case ":", "colon":
		return Colon, nil
	case " ", "\t", "whitespace", "space":
		return Whitespace, nil
	default:
		return Equals, fmt.Errorf("unknown delimiter %q (want equals, colon or whitespace)", s)
	}
}

// Char returns the delimiter character.
func (d Delimiter) Char() byte {
	switch d {
	case Colon:
		return ':'
	case Whitespace:
		return ' '
	default:
		return '='
	}
}

func (d Delimiter) String() string {
	switch d {
	case Colon:
		return "colon"
	case Whitespace:
		return "whitespace"
	default:
		return "equals"
	}
}

// Set implements pflag.Value.
func (d *Delimiter) Set(s string) error {
	v, err := ParseDelimiter(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Type implements pflag.Value.
func (d *Delimiter) Type() string { return "delimiter" }

// index returns the position of the first delimiter in line, or -1.
func (d Delimiter) index(line string) int {
	if d == Whitespace {
		return strings.IndexAny(line, " \t")
	}
	return strings.IndexByte(line, d.Char())
}
