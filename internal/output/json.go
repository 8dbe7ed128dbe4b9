package output

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// JSONWriter writes the forest as one JSON document. Object keys keep tree
// order and HTML characters are not escaped.
type JSONWriter struct {
	Indent int
}

func (j *JSONWriter) Write(w io.Writer, f *tree.Forest) error {
	var compact bytes.Buffer
	if err := encodeForest(&compact, f); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", j.Indent)); err != nil {
		return format.SerializationError(format.JSON, err)
	}
	out.WriteByte('\n')

	if _, err := w.Write(out.Bytes()); err != nil {
		return format.IOError(fmt.Errorf("writing JSON: %w", err))
	}
	return nil
}

func encodeForest(buf *bytes.Buffer, f *tree.Forest) error {
	if list := f.ListRoot(); list != nil {
		if f.Len() > 1 {
			slog.Warn("top-level list replaces the other roots", "dropped", f.Len()-1)
		}
		return encodeNode(buf, list)
	}
	return encodeMembers(buf, f.Roots())
}

func encodeMembers(buf *bytes.Buffer, nodes []*tree.Node) error {
	buf.WriteByte('{')
	for i, n := range nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(buf, n.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeNode(buf, n); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeNode(buf *bytes.Buffer, n *tree.Node) error {
	if !n.IsLeaf() {
		return encodeMembers(buf, n.Children)
	}

	v := n.Value
	switch v.Kind() {
	case tree.KindBoolean:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case tree.KindNumeric:
		num, err := jsonNumber(v.Text())
		if err != nil {
			return format.SerializationError(format.JSON, fmt.Errorf("key %q: %w", n.Name, err))
		}
		buf.WriteString(num)
	case tree.KindArray:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return encodeString(buf, v.Text())
	}
	return nil
}

// jsonNumber returns text when it already is a JSON number literal and the
// shortest float rendering otherwise.
func jsonNumber(text string) (string, error) {
	if json.Valid([]byte(text)) {
		return text, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q: %w", text, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("number %q is not finite", text)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return format.SerializationError(format.JSON, err)
	}
	buf.Write(b)
	return nil
}
