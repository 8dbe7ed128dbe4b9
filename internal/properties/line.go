package properties

import "strings"

// Line is one logical key/value entry. Number is the source line the entry
// started on.
type Line struct {
	Key    string
	Value  string
	Number int
}

func newLine(key, value string, number int) Line {
	return Line{
		Key:    sanitizeKey(key),
		Value:  sanitizeValue(value),
		Number: number,
	}
}

// appendContinuation adds the next physical line to the value.
func (l *Line) appendContinuation(text string) {
	l.Value += sanitizeValue(text)
}

// sanitizeKey drops whitespace between the key and the delimiter.
func sanitizeKey(key string) string {
	return strings.TrimRight(key, " \t\f")
}

// sanitizeValue drops whitespace after the delimiter. Trailing whitespace is
// part of the value.
func sanitizeValue(value string) string {
	return strings.TrimLeft(value, " \t\f")
}

// continues reports whether value ends with an odd number of backslashes.
// An even run is a sequence of escaped backslashes and ends the entry.
func continues(value string) bool {
	n := 0
	for i := len(value) - 1; i >= 0 && value[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
