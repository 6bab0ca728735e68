package schema

import (
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/Hanliang-Xu/asltools/aslerrors"
)

// Rule kind names accepted in rule-table documents.
const (
	kindString        = "string"
	kindBool          = "bool"
	kindNumber        = "number"
	kindNumberArray   = "number-array"
	kindNumberOrArray = "number-or-array"
)

// tableDoc is the on-disk shape of a rule-table document.
type tableDoc struct {
	Required    []entryDoc `yaml:"required"`
	Recommended []entryDoc `yaml:"recommended"`
}

type entryDoc struct {
	Field string     `yaml:"field"`
	Rule  ruleDoc    `yaml:"rule"`
	When  []matchDoc `yaml:"when"`
}

type ruleDoc struct {
	Type       string    `yaml:"type"`
	Allowed    []string  `yaml:"allowed"`
	AllowEmpty bool      `yaml:"allow_empty"`
	Size       int       `yaml:"size"`
	MinError   *boundDoc `yaml:"min_error"`
	MaxError   *boundDoc `yaml:"max_error"`
	MinWarning *boundDoc `yaml:"min_warning"`
	MaxWarning *boundDoc `yaml:"max_warning"`
}

type matchDoc struct {
	Field  string `yaml:"field"`
	Equals any    `yaml:"equals"`
	OneOf  []any  `yaml:"one_of"`
}

// boundDoc reads either a bare number (inclusive bound) or a mapping with
// value/exclusive keys.
type boundDoc struct {
	Value     float64 `yaml:"value"`
	Exclusive bool    `yaml:"exclusive"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *boundDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&b.Value)
	}
	type plain boundDoc
	return node.Decode((*plain)(b))
}

// LoadFile reads a YAML (or JSON) rule-table document from path and builds
// the required and recommended tables. The file is read once; the returned
// schemas are immutable.
func LoadFile(path string) (required, recommended Schema, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &aslerrors.LoadError{Path: path, Cause: err}
	}
	return Parse(data)
}

// Parse builds the required and recommended tables from a rule-table
// document. Malformed entries yield an error matching aslerrors.ErrSchema.
func Parse(data []byte) (required, recommended Schema, err error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, &aslerrors.SchemaError{Message: "invalid rule-table document", Cause: err}
	}

	required, err = buildSchema(doc.Required)
	if err != nil {
		return nil, nil, err
	}
	recommended, err = buildSchema(doc.Recommended)
	if err != nil {
		return nil, nil, err
	}
	return required, recommended, nil
}

func buildSchema(entries []entryDoc) (Schema, error) {
	s := make(Schema, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if e.Field == "" {
			return nil, &aslerrors.SchemaError{Message: "rule-table entry is missing a field name"}
		}
		if seen[e.Field] {
			return nil, &aslerrors.SchemaError{Field: e.Field, Message: "duplicate rule-table entry"}
		}
		seen[e.Field] = true

		rule, err := buildRule(e.Field, e.Rule)
		if err != nil {
			return nil, err
		}

		s = append(s, Entry{
			Field:     e.Field,
			Rule:      rule,
			Condition: buildCondition(e.When),
		})
	}
	return s, nil
}

func buildRule(field string, doc ruleDoc) (Rule, error) {
	switch doc.Type {
	case kindString:
		return StringRule{Allowed: doc.Allowed, AllowEmpty: doc.AllowEmpty}, nil
	case kindBool:
		return BoolRule{}, nil
	case kindNumber:
		return NumberRule{
			MinError:   bound(doc.MinError),
			MaxError:   bound(doc.MaxError),
			MinWarning: bound(doc.MinWarning),
			MaxWarning: bound(doc.MaxWarning),
		}, nil
	case kindNumberArray:
		return NumberArrayRule{
			Size:       doc.Size,
			MinError:   bound(doc.MinError),
			MaxError:   bound(doc.MaxError),
			MinWarning: bound(doc.MinWarning),
			MaxWarning: bound(doc.MaxWarning),
		}, nil
	case kindNumberOrArray:
		return NumberOrArrayRule{
			Size:       doc.Size,
			MinError:   bound(doc.MinError),
			MaxError:   bound(doc.MaxError),
			MinWarning: bound(doc.MinWarning),
			MaxWarning: bound(doc.MaxWarning),
		}, nil
	case "":
		return nil, &aslerrors.SchemaError{Field: field, Message: "rule is missing a type"}
	default:
		return nil, &aslerrors.SchemaError{Field: field, Message: "unknown rule kind \"" + doc.Type + "\""}
	}
}

func bound(doc *boundDoc) *Bound {
	if doc == nil {
		return nil
	}
	return &Bound{Value: doc.Value, Exclusive: doc.Exclusive}
}

func buildCondition(when []matchDoc) Condition {
	if len(when) == 0 {
		return Always()
	}
	matches := make([]FieldMatch, len(when))
	for i, m := range when {
		matches[i] = FieldMatch{Field: m.Field, Equals: m.Equals, OneOf: m.OneOf}
	}
	return Condition{When: matches}
}
