package reader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// JSONReader reads JSON documents, keeping object keys in document order.
type JSONReader struct{}

func (r *JSONReader) Format() format.Format { return format.JSON }

func (r *JSONReader) Read(content string) (*tree.Forest, error) {
	if !json.Valid([]byte(content)) {
		var v any
		err := json.Unmarshal([]byte(content), &v)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, format.ParseError(format.JSON, err)
	}

	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, format.ParseError(format.JSON, err)
	}

	forest := tree.NewForest()
	switch tok {
	case json.Delim('{'):
		children, err := readObject(dec, 0)
		if err != nil {
			return nil, format.ParseError(format.JSON, err)
		}
		for _, c := range children {
			forest.Merge(c)
		}
	case json.Delim('['):
		items, err := readArray(dec, "")
		if err != nil {
			return nil, format.ParseError(format.JSON, err)
		}
		forest.SetList(items...)
	default:
		return nil, format.ParseError(format.JSON, fmt.Errorf("top-level value must be an object or array, got %v", tok))
	}
	return forest, nil
}

// readObject consumes the members of an object whose opening brace has been
// read, up to and including the closing brace.
func readObject(dec *json.Decoder, level int) ([]*tree.Node, error) {
	var nodes []*tree.Node
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		n, err := readValue(dec, key, level)
		if err != nil {
			return nil, err
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// readValue reads the value of member key. A nil node means the member is
// null and has no place in the tree.
func readValue(dec *json.Decoder, key string, level int) (*tree.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := tree.NewNode(key, level)
			children, err := readObject(dec, level+1)
			if err != nil {
				return nil, err
			}
			for _, c := range children {
				node.AddChild(c)
			}
			return node, nil
		case '[':
			items, err := readArray(dec, key)
			if err != nil {
				return nil, err
			}
			return tree.NewLeaf(key, level, tree.Array(items...)), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case nil:
		return nil, nil
	default:
		text, _ := scalarText(v)
		return tree.NewLeaf(key, level, tree.Parse(text)), nil
	}
}

// readArray collects the scalar elements of an array whose opening bracket
// has been read. Containers nested in the array are skipped.
func readArray(dec *json.Decoder, key string) ([]string, error) {
	items := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok {
			slog.Debug("unsupported nested container in array", "key", key, "kind", d.String())
			if err := skipContainer(dec); err != nil {
				return nil, err
			}
			continue
		}
		if text, ok := scalarText(tok); ok {
			items = append(items, text)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}

// skipContainer discards tokens until the container just opened is closed.
func skipContainer(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// scalarText renders a scalar token. Numbers keep their source text. ok is
// false for null.
func scalarText(tok json.Token) (text string, ok bool) {
	switch v := tok.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
