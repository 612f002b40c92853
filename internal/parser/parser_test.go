package parser

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseJSONMapping(t *testing.T) {
	items, err := Parse([]byte(`{"a": "req one", "b": ["req two", "req three"]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"req one", "req two", "req three"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseJSONNestedMapping(t *testing.T) {
	blob := []byte(`{
		"auth": {"login": "user can log in", "logout": "user can log out"},
		"billing": "invoices are generated monthly"
	}`)

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{
		"user can log in",
		"user can log out",
		"invoices are generated monthly",
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseJSONScalarTypes(t *testing.T) {
	items, err := Parse([]byte(`{"a": null, "b": true, "c": 3.5}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"null", "true", "3.5"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseJSONTopLevelList(t *testing.T) {
	items, err := Parse([]byte(`["req one", "req two"]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"req one", "req two"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseJSONTopLevelListKeepsNestedContainers(t *testing.T) {
	// Elements of a top-level list are one item each. Containers are
	// rendered, not recursed into.
	items, err := Parse([]byte(`[{"id": 1, "text": "alpha"}, ["x", "y"], "beta"]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{`{"id":1,"text":"alpha"}`, `["x","y"]`, "beta"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseEmptyJSONContainers(t *testing.T) {
	for _, blob := range []string{`{}`, `[]`} {
		items, err := Parse([]byte(blob))
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", blob, err)
		}
		if len(items) != 0 {
			t.Errorf("Parse(%s) = %v, want no items", blob, items)
		}
	}
}

func TestParseJSONTrailingGarbage(t *testing.T) {
	// Not strict JSON and not YAML, so the whole line becomes one item
	blob := []byte(`{"a": "x"} trailing`)

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{`{"a": "x"} trailing`}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseYAMLMapping(t *testing.T) {
	blob := []byte("auth: login required\nbilling: invoices monthly\n")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"login required", "invoices monthly"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseYAMLSequence(t *testing.T) {
	blob := []byte("- first requirement\n- second requirement\n")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"first requirement", "second requirement"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseYAMLSequenceKeepsNestedContainers(t *testing.T) {
	blob := []byte("- name: alpha\n  done: true\n- beta\n")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{`{"name":"alpha","done":true}`, "beta"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseYAMLAnchors(t *testing.T) {
	blob := []byte("defaults: &d shared config\nprod: *d\n")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"shared config", "shared config"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseYAMLTrailingContent(t *testing.T) {
	// Content after the first document is not structured, so the plain
	// text path takes over.
	tests := []struct {
		blob string
		want []string
	}{
		{"[1] 2", []string{"[1] 2"}},
		{`{"a": "x"}]`, []string{`{"a": "x"}]`}},
		{"first: 1\n---\nsecond: 2\n", []string{"first: 1", "---", "second: 2"}},
	}

	for _, tt := range tests {
		items, err := Parse([]byte(tt.blob))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.blob, err)
		}
		if !reflect.DeepEqual(items, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.blob, items, tt.want)
		}
	}
}

func TestParseDuplicateMappingKeys(t *testing.T) {
	// A repeated key keeps its first position and takes the last value
	blobs := []string{
		`{"a": "first", "b": "middle", "a": "last"}`,
		"a: first\nb: middle\na: last\n",
	}

	want := []string{"last", "middle"}
	for _, blob := range blobs {
		items, err := Parse([]byte(blob))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", blob, err)
		}
		if !reflect.DeepEqual(items, want) {
			t.Errorf("Parse(%q) = %v, want %v", blob, items, want)
		}
	}
}

func TestParsePlainTextLines(t *testing.T) {
	blob := []byte("User can log in\nUser can reset password\n")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"User can log in", "User can reset password"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParsePlainTextBlankLines(t *testing.T) {
	blob := []byte("  first item  \n\n\n  second item\n")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"first item", "second item"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseSingleLineSentences(t *testing.T) {
	blob := []byte("The system logs every event. The admin reviews the log.")

	items, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"The system logs every event.", "The admin reviews the log."}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseScalarJSONFallsThrough(t *testing.T) {
	// A bare JSON string is valid JSON but not a structured document, so
	// the raw text takes the plain text path, quotes included.
	items, err := Parse([]byte(`"just one requirement"`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{`"just one requirement"`}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseScalarNumberFallsThrough(t *testing.T) {
	items, err := Parse([]byte("42\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"42"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse() = %v, want %v", items, want)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, blob := range []string{"", "\n  \n"} {
		items, err := Parse([]byte(blob))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", blob, err)
		}
		if len(items) != 0 {
			t.Errorf("Parse(%q) = %v, want no items", blob, items)
		}
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	items, err := Parse([]byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Parse() error = %v, want ErrInvalidEncoding", err)
	}
	if items != nil {
		t.Errorf("Parse() = %v, want nil items on error", items)
	}
}
