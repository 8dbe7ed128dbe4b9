package properties

import (
	"errors"
	"strings"
	"testing"
)

func tokenize(d Delimiter, lines ...string) *Tokenizer {
	tok := NewTokenizer(d)
	for i, l := range lines {
		tok.ProcessLine(l, i+1)
	}
	return tok
}

func assertSingle(t *testing.T, tok *Tokenizer, key, value string) {
	t.Helper()
	if tok.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (lines: %+v)", tok.Len(), tok.Lines())
	}
	got, ok := tok.Lookup(key)
	if !ok {
		t.Fatalf("key %q missing (lines: %+v)", key, tok.Lines())
	}
	if got.Value != value {
		t.Errorf("value of %q = %q, want %q", key, got.Value, value)
	}
}

func TestProcessLine_SingleEntries(t *testing.T) {
	tests := []struct {
		name      string
		delimiter Delimiter
		line      string
		key       string
		value     string
	}{
		{"equals", Equals, "website=https://en.wikipedia.org/", "website", "https://en.wikipedia.org/"},
		{"space before delimiter", Equals, "website =https://en.wikipedia.org/", "website", "https://en.wikipedia.org/"},
		{"space after delimiter", Equals, "website= https://en.wikipedia.org/", "website", "https://en.wikipedia.org/"},
		{"colon", Colon, "website:https://en.wikipedia.org/", "website", "https://en.wikipedia.org/"},
		{"whitespace", Whitespace, "website https://en.wikipedia.org/", "website", "https://en.wikipedia.org/"},
		{"tab as whitespace", Whitespace, "website\thttps://en.wikipedia.org/", "website", "https://en.wikipedia.org/"},
		{"only first delimiter splits", Equals, "query=a=b", "query", "a=b"},
		{"key without value", Whitespace, "empty", "empty", ""},
		{"trailing value whitespace kept", Equals, "padded = value  ", "padded", "value  "},
		{"leading line whitespace dropped", Equals, "   indented=yes", "indented", "yes"},
		{"utf8", Equals, "helloInJapanese = こんにちは", "helloInJapanese", "こんにちは"},
		{"escaped unicode kept verbatim", Equals, `encodedHelloInJapanese = こんにち\u306`, "encodedHelloInJapanese", `こんにち\u306`},
		{"k=v under equals", Equals, "k=v", "k", "v"},
		{"k=v under colon is one key", Colon, "k=v", "k=v", ""},
		{"leading delimiter keeps literal key", Equals, "=orphan", "=orphan", "orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokenize(tt.delimiter, tt.line)
			assertSingle(t, tok, tt.key, tt.value)
		})
	}
}

func TestProcessLine_Skipped(t *testing.T) {
	tests := []struct {
		name      string
		delimiter Delimiter
		line      string
	}{
		{"empty line", Equals, ""},
		{"whitespace line", Equals, "   \t"},
		{"hash comment", Equals, "#website=https://en.wikipedia.org/"},
		{"exclamation comment", Whitespace, "!website=https://en.wikipedia.org/"},
		{"indented comment", Equals, "   # note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokenize(tt.delimiter, tt.line)
			if tok.Len() != 0 {
				t.Errorf("Len() = %d, want 0 (lines: %+v)", tok.Len(), tok.Lines())
			}
		})
	}
}

func TestProcessLine_Multiline(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		key   string
		value string
	}{
		{
			name:  "plain continuation",
			lines: []string{`multiline=This line \`, "continues"},
			key:   "multiline", value: "This line continues",
		},
		{
			name:  "continuation absorbs comment marker",
			lines: []string{`multiline=This line \`, "#continues"},
			key:   "multiline", value: "This line #continues",
		},
		{
			name:  "continuation leading whitespace trimmed",
			lines: []string{`multiline=This line \`, "    continues"},
			key:   "multiline", value: "This line continues",
		},
		{
			name:  "sanitized continuation",
			lines: []string{`welcome = Welcome to \`, "          Wikipedia!"},
			key:   "welcome", value: "Welcome to Wikipedia!",
		},
		{
			name:  "even backslashes end the entry",
			lines: []string{`evenKey = This is on one line\\`, "# This line is a normal comment and is not included in the value for evenKey"},
			key:   "evenKey", value: `This is on one line\\`,
		},
		{
			name:  "odd backslashes continue",
			lines: []string{`oddKey = This is on one line\\\`, "# This is line two off an odd key"},
			key:   "oddKey", value: `This is on one line\\# This is line two off an odd key`,
		},
		{
			name:  "continuation with delimiter inside",
			lines: []string{`url=http://host/?\`, "a=b"},
			key:   "url", value: "http://host/?a=b",
		},
		{
			name:  "three physical lines",
			lines: []string{`fruits = apple,\`, `  banana,\`, "  pear"},
			key:   "fruits", value: "apple,banana,pear",
		},
		{
			name:  "blank line keeps continuation pending",
			lines: []string{`k = a\`, "", "b"},
			key:   "k", value: "ab",
		},
		{
			name:  "dangling continuation at end of input",
			lines: []string{`k = a\`},
			key:   "k", value: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokenize(Equals, tt.lines...)
			assertSingle(t, tok, tt.key, tt.value)
		})
	}
}

func TestProcessLine_DuplicateKeyLastWins(t *testing.T) {
	tok := tokenize(Equals, "duplicateKey = first", "duplicateKey = second")
	assertSingle(t, tok, "duplicateKey", "second")

	l, _ := tok.Lookup("duplicateKey")
	if l.Number != 2 {
		t.Errorf("Number = %d, want 2", l.Number)
	}
}

func TestContinues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"This is on one line", false},
		{`This is on one line\`, true},
		{`This is on one line\\`, false},
		{`This is on one line\\\`, true},
		{"", false},
	}
	for _, tt := range tests {
		if got := continues(tt.value); got != tt.want {
			t.Errorf("continues(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestTokenize_OrderAndStats(t *testing.T) {
	input := strings.Join([]string{
		"# header",
		"b.key=1",
		"",
		"a.key=2",
		"! bang comment",
		"b.key=3",
		"\r",
	}, "\n")

	tok := NewTokenizer(Equals)
	if err := tok.Tokenize(strings.NewReader(input)); err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	lines := tok.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() = %+v, want 2 entries", lines)
	}
	if lines[0].Key != "b.key" || lines[0].Value != "3" || lines[1].Key != "a.key" {
		t.Errorf("Lines() = %+v, want b.key=3 then a.key=2", lines)
	}

	stats := tok.Stats()
	if stats.Lines != 7 {
		t.Errorf("Stats.Lines = %d, want 7", stats.Lines)
	}
	if stats.Entries != 3 {
		t.Errorf("Stats.Entries = %d, want 3", stats.Entries)
	}
	if len(stats.Comments) != 2 || stats.Comments[0].Number != 1 || stats.Comments[1].Number != 5 {
		t.Errorf("Stats.Comments = %+v, want lines 1 and 5", stats.Comments)
	}
	if len(stats.BlankLines) != 2 || stats.BlankLines[0] != 3 || stats.BlankLines[1] != 7 {
		t.Errorf("Stats.BlankLines = %v, want [3 7]", stats.BlankLines)
	}
}

func TestTokenize_ByteOrderMark(t *testing.T) {
	tok := NewTokenizer(Equals)
	if err := tok.Tokenize(strings.NewReader("\ufeffkey=value\n")); err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	assertSingle(t, tok, "key", "value")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestTokenize_ReaderError(t *testing.T) {
	tok := NewTokenizer(Equals)
	if err := tok.Tokenize(failingReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
}
