package output

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// PropertiesWriter flattens the forest back into dotted keys. Values are
// written as they are, without escaping. A top-level list comes out under
// the empty key, as "=a,b".
//
// Since nothing is escaped, a value ending in an odd run of backslashes or
// holding a line break reads back as a continuation and absorbs the next
// entry. Such values are written anyway and logged.
type PropertiesWriter struct{}

func (p *PropertiesWriter) Write(w io.Writer, f *tree.Forest) error {
	bw := bufio.NewWriter(w)
	f.Walk(func(path []string, n *tree.Node) {
		if !n.IsLeaf() {
			return
		}
		key := strings.Join(path, ".")
		value := n.Value.String()
		if breaksLine(value) {
			slog.Warn("value will not read back as written", "key", key)
		}
		bw.WriteString(key)
		bw.WriteByte('=')
		bw.WriteString(value)
		bw.WriteByte('\n')
	})
	if err := bw.Flush(); err != nil {
		return format.IOError(err)
	}
	return nil
}

// breaksLine reports whether value would not survive a round trip through
// the properties tokenizer.
func breaksLine(value string) bool {
	if strings.ContainsAny(value, "\r\n") {
		return true
	}
	n := 0
	for i := len(value) - 1; i >= 0 && value[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
