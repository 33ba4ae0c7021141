package decl

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is one declaration file: a single invocation of both generators.
type File struct {
	// Version of the schema; only "1" is supported.
	Version string `yaml:"version"`
	// Package is the name of the generated package. Empty means the name
	// of the target package.
	Package string `yaml:"package,omitempty"`
	// Output is the generated file name, relative to the declaration file.
	Output string `yaml:"output,omitempty"`
	// Accessor overrides the import path generated code uses for Getter.
	Accessor string `yaml:"accessor,omitempty"`
	// Maps lists map constructors to generate.
	Maps []MapDecl `yaml:"maps,omitempty"`
	// Getters lists marker types to generate.
	Getters Bindings `yaml:"getters,omitempty"`

	// Source is the base name of the file the declarations were read from.
	Source string `yaml:"-"`
}

// MapStyle selects how a map constructor populates its result.
type MapStyle string

const (
	// StyleInsert creates an empty map and assigns every entry in source
	// order.
	StyleInsert MapStyle = "insert"
	// StyleLiteral returns a composite literal of the entries folded with
	// last-write-wins.
	StyleLiteral MapStyle = "literal"
)

// IsValid returns true if the style is a known value.
func (s MapStyle) IsValid() bool {
	return s == StyleInsert || s == StyleLiteral
}

// MapDecl declares one map constructor.
type MapDecl struct {
	Name     string   `yaml:"name"`
	Exported bool     `yaml:"exported,omitempty"`
	Key      string   `yaml:"key,omitempty"`
	Value    string   `yaml:"value,omitempty"`
	Style    MapStyle `yaml:"style,omitempty"`
	Entries  Pairs    `yaml:"entries,omitempty"`

	// Line is the declaration file line of the map.
	Line int `yaml:"-"`
}

// GoName returns the constructor name with Go export rules applied.
func (m *MapDecl) GoName() string {
	return GoName(m.Name, m.Exported)
}

// KeyType returns the declared key type, or the default type of the first
// key when none was declared.
func (m *MapDecl) KeyType() string {
	if m.Key != "" {
		return m.Key
	}

	if len(m.Entries) > 0 {
		return m.Entries[0].Key.Kind.DefaultType()
	}

	return ""
}

// ValueType returns the declared value type, or the default type of the
// first value when none was declared.
func (m *MapDecl) ValueType() string {
	if m.Value != "" {
		return m.Value
	}

	if len(m.Entries) > 0 {
		return m.Entries[0].Value.Kind.DefaultType()
	}

	return ""
}

// UnmarshalYAML records the line of the map declaration.
func (m *MapDecl) UnmarshalYAML(node *yaml.Node) error {
	type plain MapDecl

	if err := node.Decode((*plain)(m)); err != nil {
		return err
	}

	m.Line = node.Line

	return nil
}

// Pair is one key/value entry of a map.
type Pair struct {
	Key   Literal
	Value Literal
	// Line is the declaration file line of the entry.
	Line int
}

// Pairs is an ordered list of map entries; keys may repeat.
type Pairs []Pair

// UnmarshalYAML implements custom YAML unmarshaling for Pairs.
// Accepts:
//   - Shorthand string: "1 => 2, 3 => 4"
//   - Array of shorthand strings and {key, value} maps:
//     ["1 => 2", {key: 3, value: 4}]
func (p *Pairs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		pairs, err := ParsePairs(node.Value, contentLine(node))
		if err != nil {
			return err
		}

		*p = pairs

		return nil

	case yaml.SequenceNode:
		var pairs Pairs

		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				parsed, err := ParsePairs(item.Value, contentLine(item))
				if err != nil {
					return err
				}

				pairs = append(pairs, parsed...)

			case yaml.MappingNode:
				pair, err := parsePairFromMap(item)
				if err != nil {
					return err
				}

				pairs = append(pairs, pair)

			default:
				return syntaxError(item.Line, "expected \"key => value\" or {key, value} entry")
			}
		}

		*p = pairs

		return nil

	default:
		return syntaxError(node.Line, "entries must be a string or a list")
	}
}

// parsePairFromMap parses a YAML mapping like {key: 1, value: 2}.
func parsePairFromMap(node *yaml.Node) (Pair, error) {
	var raw struct {
		Key   yaml.Node `yaml:"key"`
		Value yaml.Node `yaml:"value"`
	}

	if err := node.Decode(&raw); err != nil {
		return Pair{}, syntaxError(node.Line, err.Error())
	}

	if raw.Key.Kind == 0 || raw.Value.Kind == 0 {
		return Pair{}, syntaxError(node.Line, "entry needs both key and value")
	}

	key, err := literalFromNode(&raw.Key)
	if err != nil {
		return Pair{}, err
	}

	value, err := literalFromNode(&raw.Value)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Key: key, Value: value, Line: node.Line}, nil
}

// Binding declares one marker type.
type Binding struct {
	Exported bool
	Name     string
	Type     string
	Value    Literal
	// Line is the declaration file line of the binding.
	Line int
}

// GoName returns the type name with Go export rules applied.
func (b *Binding) GoName() string {
	return GoName(b.Name, b.Exported)
}

// Bindings is an ordered list of marker type declarations.
type Bindings []Binding

// UnmarshalYAML implements custom YAML unmarshaling for Bindings.
// Accepts:
//   - Shorthand string: "Foo: uint32 = 10; export Bar: uint32 = 42;"
//   - Array of shorthand strings and {name, type, value, exported} maps
func (b *Bindings) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		bindings, err := ParseBindings(node.Value, contentLine(node))
		if err != nil {
			return err
		}

		*b = bindings

		return nil

	case yaml.SequenceNode:
		var bindings Bindings

		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				parsed, err := ParseBindings(item.Value, contentLine(item))
				if err != nil {
					return err
				}

				bindings = append(bindings, parsed...)

			case yaml.MappingNode:
				binding, err := parseBindingFromMap(item)
				if err != nil {
					return err
				}

				bindings = append(bindings, binding)

			default:
				return syntaxError(item.Line, "expected shorthand binding or {name, type, value} map")
			}
		}

		*b = bindings

		return nil

	default:
		return syntaxError(node.Line, "getters must be a string or a list")
	}
}

func parseBindingFromMap(node *yaml.Node) (Binding, error) {
	var raw struct {
		Name     string    `yaml:"name"`
		Type     string    `yaml:"type"`
		Value    yaml.Node `yaml:"value"`
		Exported bool      `yaml:"exported"`
	}

	if err := node.Decode(&raw); err != nil {
		return Binding{}, syntaxError(node.Line, err.Error())
	}

	if raw.Value.Kind == 0 {
		return Binding{}, syntaxError(node.Line, fmt.Sprintf("binding %q has no value", raw.Name))
	}

	value, err := literalFromNode(&raw.Value)
	if err != nil {
		return Binding{}, err
	}

	return Binding{
		Exported: raw.Exported,
		Name:     raw.Name,
		Type:     raw.Type,
		Value:    value,
		Line:     node.Line,
	}, nil
}

// goLiteralTag marks a YAML scalar holding verbatim Go literal text.
const goLiteralTag = "!go"

// literalFromNode converts a YAML scalar into a Go literal by its tag.
func literalFromNode(node *yaml.Node) (Literal, error) {
	if node.Kind != yaml.ScalarNode {
		return Literal{}, syntaxError(node.Line, "expected a literal scalar")
	}

	var (
		lit Literal
		err error
	)

	switch node.ShortTag() {
	case "!!int", "!!float":
		lit, err = ParseLiteral(strings.TrimPrefix(node.Value, "+"))
	case "!!bool":
		var v bool

		v, err = strconv.ParseBool(node.Value)
		lit = Literal{Kind: LiteralBool, Text: strconv.FormatBool(v)}
	case "!!str":
		lit = Literal{Kind: LiteralString, Text: strconv.Quote(node.Value)}
	case goLiteralTag:
		lit, err = ParseLiteral(node.Value)
	default:
		return Literal{}, syntaxError(node.Line, fmt.Sprintf("%s is not a literal", node.ShortTag()))
	}

	if err != nil {
		return Literal{}, syntaxError(node.Line, fmt.Sprintf("invalid literal %q", node.Value))
	}

	return lit, nil
}

// contentLine returns the line a scalar's content starts on; block scalars
// start on the line after their indicator.
func contentLine(node *yaml.Node) int {
	if node.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return node.Line + 1
	}

	return node.Line
}
