package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxDepth bounds tree conversion so that pathological alias nesting
// cannot recurse forever.
const maxDepth = 200

type nodeKind int

const (
	kindScalar nodeKind = iota
	kindMapping
	kindSequence
)

// node is a format-neutral view of a structured document. Mapping entries
// and sequence elements keep document order.
type node struct {
	kind     nodeKind
	value    string   // scalar literal text
	quoted   bool     // scalar was a string in the source
	keys     []string // mapping keys, parallel to children
	children []*node  // mapping values or sequence elements
}

// insert adds a mapping entry. A repeated key keeps its first position and
// takes the last value.
func (n *node) insert(key string, child *node) {
	for i, k := range n.keys {
		if k == key {
			n.children[i] = child
			return
		}
	}
	n.keys = append(n.keys, key)
	n.children = append(n.children, child)
}

// decodeJSON parses text as a single strict JSON document. Content after
// the first value makes the document invalid.
func decodeJSON(text string) (*node, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	root, err := parseJSONValue(dec)
	if err != nil {
		return nil, false
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	return root, true
}

func parseJSONValue(dec *json.Decoder) (*node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &node{kind: kindMapping}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				child, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.insert(key, child)
			}
			// Consume the closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &node{kind: kindSequence}
			for dec.More() {
				child, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.children = append(n.children, child)
			}
			// Consume the closing bracket
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return &node{kind: kindScalar, value: t, quoted: true}, nil
	case json.Number:
		return &node{kind: kindScalar, value: t.String()}, nil
	case bool:
		return &node{kind: kindScalar, value: strconv.FormatBool(t)}, nil
	case nil:
		return &node{kind: kindScalar, value: "null"}, nil
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

// decodeYAML parses text as a single YAML document. Also succeeds on plain
// scalars, which callers treat as unstructured. Content after the first
// document, including a second document, makes the text unstructured.
func decodeYAML(text string) (*node, bool) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}

	var rest yaml.Node
	if err := dec.Decode(&rest); err != io.EOF {
		return nil, false
	}

	root := yamlToNode(&doc, 0)
	if root == nil {
		return nil, false
	}

	return root, true
}

func yamlToNode(n *yaml.Node, depth int) *node {
	if depth > maxDepth {
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return yamlToNode(n.Content[0], depth+1)
	case yaml.AliasNode:
		return yamlToNode(n.Alias, depth+1)
	case yaml.MappingNode:
		out := &node{kind: kindMapping}
		for i := 0; i+1 < len(n.Content); i += 2 {
			child := yamlToNode(n.Content[i+1], depth+1)
			if child == nil {
				return nil
			}
			out.insert(n.Content[i].Value, child)
		}
		return out
	case yaml.SequenceNode:
		out := &node{kind: kindSequence}
		for _, c := range n.Content {
			child := yamlToNode(c, depth+1)
			if child == nil {
				return nil
			}
			out.children = append(out.children, child)
		}
		return out
	case yaml.ScalarNode:
		value := n.Value
		if n.Tag == "!!null" {
			value = "null"
		}
		return &node{kind: kindScalar, value: value, quoted: n.Tag == "!!str"}
	}

	return nil
}

// flatten applies the extraction rules to a structured document. A mapping
// root is walked depth first: nested mappings and sequences contribute
// every scalar under them, in document order. A sequence root contributes
// exactly one item per element without recursing, so nested containers
// become single rendered items.
func flatten(root *node) []string {
	switch root.kind {
	case kindMapping:
		items := make([]string, 0)
		var walk func(n *node)
		walk = func(n *node) {
			switch n.kind {
			case kindMapping, kindSequence:
				for _, c := range n.children {
					walk(c)
				}
			case kindScalar:
				items = append(items, n.value)
			}
		}
		walk(root)
		return items
	case kindSequence:
		items := make([]string, 0, len(root.children))
		for _, c := range root.children {
			items = append(items, stringify(c))
		}
		return items
	}

	return nil
}

// stringify renders a node as one item. Scalars keep their literal text;
// containers render as compact JSON.
func stringify(n *node) string {
	if n.kind == kindScalar {
		return n.value
	}

	var b strings.Builder
	writeJSON(&b, n)
	return b.String()
}

func writeJSON(b *strings.Builder, n *node) {
	switch n.kind {
	case kindScalar:
		if n.quoted {
			b.WriteString(strconv.Quote(n.value))
		} else {
			b.WriteString(n.value)
		}
	case kindMapping:
		b.WriteByte('{')
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(n.keys[i]))
			b.WriteByte(':')
			writeJSON(b, c)
		}
		b.WriteByte('}')
	case kindSequence:
		b.WriteByte('[')
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, c)
		}
		b.WriteByte(']')
	}
}
