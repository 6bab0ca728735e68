package schema

import "github.com/Hanliang-Xu/asltools/sidecar"

// FieldMatch is one expectation on a controlling field. Exactly one of
// Equals or OneOf should be set; an absent field never matches anything,
// including an expected false.
type FieldMatch struct {
	// Field is the controlling field name
	Field string
	// Equals is a single expected value
	Equals any
	// OneOf is a set of acceptable values
	OneOf []any
}

// matches reports whether the record satisfies this expectation.
func (m FieldMatch) matches(rec sidecar.Record) bool {
	v := rec.Get(m.Field)
	if v.IsAbsent() {
		return false
	}

	if len(m.OneOf) > 0 {
		for _, expected := range m.OneOf {
			if equalValue(v, expected) {
				return true
			}
		}
		return false
	}
	return equalValue(v, m.Equals)
}

// Condition gates whether a field's rule applies to a record.
// The zero value applies always; otherwise every expectation in When must
// hold (logical AND). There is no OR, negation, or nesting.
type Condition struct {
	When []FieldMatch
}

// Always returns the condition that applies to every record.
func Always() Condition {
	return Condition{}
}

// WhenEquals returns a condition requiring field to equal expected.
func WhenEquals(field string, expected any) Condition {
	return Condition{When: []FieldMatch{{Field: field, Equals: expected}}}
}

// WhenOneOf returns a condition requiring field to be one of expected.
func WhenOneOf(field string, expected ...any) Condition {
	return Condition{When: []FieldMatch{{Field: field, OneOf: expected}}}
}

// Applies reports whether the condition holds for the record.
func (c Condition) Applies(rec sidecar.Record) bool {
	for _, m := range c.When {
		if !m.matches(rec) {
			return false
		}
	}
	return true
}

// equalValue compares a classified record value with an expected literal.
// Numeric comparisons are done in float64 so JSON floats and YAML ints agree.
func equalValue(v sidecar.Value, expected any) bool {
	switch v.Kind() {
	case sidecar.KindString:
		s, ok := expected.(string)
		return ok && v.Str() == s
	case sidecar.KindBool:
		b, ok := expected.(bool)
		return ok && v.Bool() == b
	case sidecar.KindNumber:
		n, ok := toFloat(expected)
		return ok && v.Number() == n
	default:
		return false
	}
}

// toFloat converts any Go numeric literal to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}
