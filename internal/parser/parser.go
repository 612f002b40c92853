package parser

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding indicates input that is not valid UTF-8 text
var ErrInvalidEncoding = errors.New("document is not valid UTF-8 text")

// attempt tries to extract items from text in one specific format.
// It reports false when the text is not in that format.
type attempt func(text string) ([]string, bool)

// Parse extracts the ordered list of textual items from a raw document.
// Formats are attempted in a fixed order, JSON then YAML then plain text,
// and the first match wins. Plain text always matches, so the only error
// is input that is not UTF-8.
func Parse(blob []byte) ([]string, error) {
	if !utf8.Valid(blob) {
		return nil, ErrInvalidEncoding
	}

	text := string(blob)

	attempts := []attempt{tryJSON, tryYAML}
	for _, try := range attempts {
		if items, ok := try(text); ok {
			return items, nil
		}
	}

	return splitPlainText(text), nil
}

func tryJSON(text string) ([]string, bool) {
	root, ok := decodeJSON(text)
	if !ok {
		return nil, false
	}
	return flattenRoot(root)
}

func tryYAML(text string) ([]string, bool) {
	root, ok := decodeYAML(text)
	if !ok {
		return nil, false
	}
	return flattenRoot(root)
}

// flattenRoot turns a decoded document into items. A scalar root does not
// count as structured: prose that YAML reads as one big scalar must fall
// through to plain text handling.
func flattenRoot(root *node) ([]string, bool) {
	if root.kind == kindScalar {
		return nil, false
	}
	return flatten(root), true
}

// splitPlainText extracts items from unstructured text. Two or more
// non-blank lines mean one item per line. A single line is segmented
// into sentences instead.
func splitPlainText(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) > 1 {
		return lines
	}

	return splitSentences(text)
}
