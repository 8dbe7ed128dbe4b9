package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/properties"
	"github.com/dshills/procon/internal/tree"
)

func leafValue(t *testing.T, f *tree.Forest, path ...string) tree.Value {
	t.Helper()
	n := f.Lookup(path...)
	if n == nil {
		t.Fatalf("node %v not found", path)
	}
	return n.Value
}

func TestNew(t *testing.T) {
	for _, f := range []format.Format{format.Properties, format.JSON, format.YAML} {
		r, err := New(f, properties.Equals)
		if err != nil {
			t.Fatalf("New(%s): %v", f, err)
		}
		if r.Format() != f {
			t.Errorf("New(%s).Format() = %s", f, r.Format())
		}
	}

	_, err := New(format.TOML, properties.Equals)
	if format.KindOf(err) != format.KindUnsupportedType {
		t.Errorf("New(toml) error = %v, want unsupported type", err)
	}
	if _, err := New("xml", properties.Equals); err == nil {
		t.Error("New(xml) should fail")
	}
}

func TestPropertiesReader(t *testing.T) {
	content := "# datasource\n" +
		"reader.datasource.jdbc-url=localhost\n" +
		"reader.datasource.pool=10\n" +
		"\n" +
		"reader.enabled=true\n" +
		"writer.targets=a,b\n" +
		"reader.enabled=false\n"

	f, err := (&PropertiesReader{Delimiter: properties.Equals}).Read(content)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var roots []string
	for _, r := range f.Roots() {
		roots = append(roots, r.Name)
	}
	if diff := cmp.Diff([]string{"reader", "writer"}, roots); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		path []string
		want tree.Value
	}{
		{[]string{"reader", "datasource", "jdbc-url"}, tree.String("localhost")},
		{[]string{"reader", "datasource", "pool"}, tree.Numeric("10")},
		{[]string{"reader", "enabled"}, tree.Boolean(false)},
		{[]string{"writer", "targets"}, tree.Array("a", "b")},
	}
	for _, tt := range tests {
		if got := leafValue(t, f, tt.path...); !got.Equal(tt.want) {
			t.Errorf("%v = %#v, want %#v", tt.path, got, tt.want)
		}
	}
}

func TestPropertiesReader_Delimiters(t *testing.T) {
	tests := []struct {
		d       properties.Delimiter
		content string
	}{
		{properties.Equals, "a.b=c"},
		{properties.Colon, "a.b:c"},
		{properties.Whitespace, "a.b c"},
	}
	for _, tt := range tests {
		f, err := (&PropertiesReader{Delimiter: tt.d}).Read(tt.content)
		if err != nil {
			t.Fatalf("Read(%q): %v", tt.content, err)
		}
		if got := leafValue(t, f, "a", "b"); !got.Equal(tree.String("c")) {
			t.Errorf("%s: a.b = %#v", tt.d, got)
		}
	}
}

func TestJSONReader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    []string
		want    tree.Value
	}{
		{"single", `{"reader": "reader-value"}`, []string{"reader"}, tree.String("reader-value")},
		{"nested", `{"reader":{"datasource":{"jdbc-url":"localhost"}}}`, []string{"reader", "datasource", "jdbc-url"}, tree.String("localhost")},
		{"array", `{"readers": ["value-1","value-1"]}`, []string{"readers"}, tree.Array("value-1", "value-1")},
		{"empty array", `{"readers": []}`, []string{"readers"}, tree.Array()},
		{"bool", `{"isReader": true}`, []string{"isReader"}, tree.Boolean(true)},
		{"number", `{"isReader": 1}`, []string{"isReader"}, tree.Numeric("1")},
		{"float keeps text", `{"isReader": 1.780}`, []string{"isReader"}, tree.Numeric("1.780")},
		{"string is re-typed", `{"flag": "TRUE"}`, []string{"flag"}, tree.Boolean(true)},
		{"mixed array", `{"a": [1, "x", false, null]}`, []string{"a"}, tree.Array("1", "x", "false")},
		{"array drops containers", `{"a": ["x", {"b": 1}, [2, 3], "y"]}`, []string{"a"}, tree.Array("x", "y")},
		{"elements are not split", `{"a": ["x,y", "z"]}`, []string{"a"}, tree.Array("x,y", "z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := (&JSONReader{}).Read(tt.content)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got := leafValue(t, f, tt.path...); !got.Equal(tt.want) {
				t.Errorf("%v = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}

func TestJSONReader_Shape(t *testing.T) {
	content := `{"reader":{"datasource":{"jdbc-url":"localhost"}},"writer":{"datasource":{"jdbc-url":"localhost"}},"gone":null}`

	f, err := (&JSONReader{}).Read(content)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []*tree.Node{
		{Name: "reader", Children: []*tree.Node{
			{Name: "datasource", Level: 1, Children: []*tree.Node{
				{Name: "jdbc-url", Level: 2, Value: tree.String("localhost")},
			}},
		}},
		{Name: "writer", Children: []*tree.Node{
			{Name: "datasource", Level: 1, Children: []*tree.Node{
				{Name: "jdbc-url", Level: 2, Value: tree.String("localhost")},
			}},
		}},
	}
	if diff := cmp.Diff(want, f.Roots()); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONReader_EmptyObject(t *testing.T) {
	f, err := (&JSONReader{}).Read("{}")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !f.IsEmpty() {
		t.Errorf("roots = %d, want 0", f.Len())
	}
}

func TestJSONReader_TopLevelArray(t *testing.T) {
	f, err := (&JSONReader{}).Read(`["a", 2, true]`)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	root := f.ListRoot()
	if root == nil {
		t.Fatal("expected a list root")
	}
	if !root.Value.Equal(tree.Array("a", "2", "true")) {
		t.Errorf("list root = %#v", root.Value)
	}
}

func TestJSONReader_Errors(t *testing.T) {
	for _, content := range []string{
		"",
		"{",
		`{"a": 1} trailing`,
		`"just a string"`,
		"42",
		"a=b",
	} {
		_, err := (&JSONReader{}).Read(content)
		if !format.IsParseError(err) {
			t.Errorf("Read(%q) error = %v, want parse error", content, err)
		}
	}
}

func TestYAMLReader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    []string
		want    tree.Value
	}{
		{"nested", "writer:\n  datasource:\n    jdbc-url: localhost\n", []string{"writer", "datasource", "jdbc-url"}, tree.String("localhost")},
		{"sequence", "readers:\n  - value-1\n  - value-2\n", []string{"readers"}, tree.Array("value-1", "value-2")},
		{"bool", "isReader: true", []string{"isReader"}, tree.Boolean(true)},
		{"number", "isReader: 1", []string{"isReader"}, tree.Numeric("1")},
		{"float", "isReader: 1.78", []string{"isReader"}, tree.Numeric("1.78")},
		{"quoted number is re-typed", `port: "8080"`, []string{"port"}, tree.Numeric("8080")},
		{"flow sequence", "a: [1, x, null, {b: c}]", []string{"a"}, tree.Array("1", "x")},
		{"alias", "base: &b localhost\nhost: *b\n", []string{"host"}, tree.String("localhost")},
		{"merge key", "defaults: &d\n  port: 80\nserver:\n  <<: *d\n  host: h\n", []string{"server", "port"}, tree.Numeric("80")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := (&YAMLReader{}).Read(tt.content)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got := leafValue(t, f, tt.path...); !got.Equal(tt.want) {
				t.Errorf("%v = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}

func TestYAMLReader_KeyOrderAndSkips(t *testing.T) {
	content := "writer: w\nnothing: ~\ntagged: !secret abc\nreader: r\n"

	f, err := (&YAMLReader{}).Read(content)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var names []string
	for _, r := range f.Roots() {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"writer", "reader"}, names); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLReader_TopLevelSequence(t *testing.T) {
	f, err := (&YAMLReader{}).Read("- a\n- b\n")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if root := f.ListRoot(); root == nil || !root.Value.Equal(tree.Array("a", "b")) {
		t.Errorf("list root = %+v", root)
	}
}

func TestYAMLReader_Errors(t *testing.T) {
	for _, content := range []string{
		"",
		"# only a comment\n",
		"key=value\nother=1\n",
		"a: [unclosed",
	} {
		_, err := (&YAMLReader{}).Read(content)
		if !format.IsParseError(err) {
			t.Errorf("Read(%q) error = %v, want parse error", content, err)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    format.Format
	}{
		{"json object", `{"a": {"b": 1}}`, format.JSON},
		{"json array", `[1, 2]`, format.JSON},
		{"yaml mapping", "a:\n  b: 1\n", format.YAML},
		{"properties", "a.b=1\na.c=2\n", format.Properties},
		{"properties with comment", "# header\na.b=1\n", format.Properties},
		{"empty input", "", format.Properties},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, got := Detect(tt.content, properties.Equals)
			if got != tt.want {
				t.Errorf("Detect() format = %q, want %q", got, tt.want)
			}
			if f == nil {
				t.Fatal("Detect() returned a nil forest")
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	// an explicit source format is never second-guessed
	_, err := ParseInput("a.b=1", format.JSON, properties.Equals)
	if !format.IsParseError(err) {
		t.Errorf("ParseInput as json error = %v, want parse error", err)
	}

	f, err := ParseInput("a.b=1", "", properties.Equals)
	if err != nil {
		t.Fatalf("ParseInput detect: %v", err)
	}
	if got := leafValue(t, f, "a", "b"); !got.Equal(tree.Numeric("1")) {
		t.Errorf("a.b = %#v", got)
	}

	f, err = ParseInput("a b", format.Properties, properties.Whitespace)
	if err != nil {
		t.Fatalf("ParseInput properties: %v", err)
	}
	if got := leafValue(t, f, "a"); !got.Equal(tree.String("b")) {
		t.Errorf("a = %#v", got)
	}
}
