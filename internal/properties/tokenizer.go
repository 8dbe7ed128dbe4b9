package properties

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

// maxLineBytes bounds a single physical line.
const maxLineBytes = 16 << 20

// Stats describes what the tokenizer skipped and kept.
type Stats struct {
	Lines      int    // physical lines read
	Entries    int    // key/value lines processed, duplicates included
	Comments   []Line // Value holds the comment text
	BlankLines []int
}

// Tokenizer turns properties text into logical lines. The zero value is not
// usable; call NewTokenizer.
type Tokenizer struct {
	delimiter Delimiter
	entries   map[string]*Line
	order     []string

	continuing bool
	pendingKey string

	stats Stats
}

// NewTokenizer returns a tokenizer splitting lines at d.
func NewTokenizer(d Delimiter) *Tokenizer {
	return &Tokenizer{
		delimiter: d,
		entries:   make(map[string]*Line),
	}
}

// Tokenize feeds every line of r through ProcessLine. It only fails when r
// does.
func (t *Tokenizer) Tokenize(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	number := 0
	for sc.Scan() {
		number++
		line := sc.Text()
		if number == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		t.ProcessLine(line, number)
	}
	return sc.Err()
}

// ProcessLine consumes one physical line. number is its 1-based position in
// the source and is only used for diagnostics.
func (t *Tokenizer) ProcessLine(line string, number int) {
	t.stats.Lines++

	if strings.TrimSpace(line) == "" {
		t.stats.BlankLines = append(t.stats.BlankLines, number)
		return
	}

	if t.continuing {
		prev := t.entries[t.pendingKey]
		prev.appendContinuation(line)
		t.continuing = trimContinuation(prev)
		if !t.continuing {
			t.pendingKey = ""
		}
		return
	}

	line = strings.TrimLeft(line, " \t\f")
	if line[0] == '#' || line[0] == '!' {
		t.stats.Comments = append(t.stats.Comments, Line{Value: line, Number: number})
		return
	}

	var key, value string
	switch i := t.delimiter.index(line); {
	case i < 0:
		key = line
	case sanitizeKey(line[:i]) == "":
		// nothing before the delimiter; keep the literal line as key
		key, value = line, line[i+1:]
	default:
		key, value = line[:i], line[i+1:]
	}

	entry := newLine(key, value, number)
	if trimContinuation(&entry) {
		slog.Debug("continuation line", "key", entry.Key, "line", number)
		t.continuing = true
		t.pendingKey = entry.Key
	}
	t.add(entry)
}

// trimContinuation removes the continuation backslash from l and reports
// whether the entry goes on in the next line.
func trimContinuation(l *Line) bool {
	if !continues(l.Value) {
		return false
	}
	l.Value = l.Value[:len(l.Value)-1]
	return true
}

func (t *Tokenizer) add(entry Line) {
	t.stats.Entries++
	if existing, ok := t.entries[entry.Key]; ok {
		slog.Debug("duplicate key, last wins", "key", entry.Key, "first", existing.Number, "line", entry.Number)
		*existing = entry
		return
	}
	t.entries[entry.Key] = &entry
	t.order = append(t.order, entry.Key)
}

// Lines returns the entries ordered by the first appearance of their key.
func (t *Tokenizer) Lines() []Line {
	out := make([]Line, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, *t.entries[k])
	}
	return out
}

// Lookup returns the entry for key.
func (t *Tokenizer) Lookup(key string) (Line, bool) {
	l, ok := t.entries[key]
	if !ok {
		return Line{}, false
	}
	return *l, true
}

// Len returns the number of distinct keys.
func (t *Tokenizer) Len() int { return len(t.order) }

// Stats returns the skipped lines and counters collected so far.
func (t *Tokenizer) Stats() Stats { return t.stats }
