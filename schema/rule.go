package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Hanliang-Xu/asltools/sidecar"
)

// Outcome is the result of checking one field value against one rule.
type Outcome struct {
	// Errors are hard rule violations for this field
	Errors []string
	// Warnings are values inside the hard bounds but outside the usual band
	Warnings []string
	// Value is the normalized value the rule derived from the raw input
	Value any
}

// Rule checks a single field value.
// Implementations are stateless: the same inputs always produce the same
// outcome, and a rule never inspects other fields (cross-field gating is the
// job of Condition).
type Rule interface {
	Check(field string, v sidecar.Value) Outcome
}

// Bound is one threshold of a numeric band. A value exactly at the bound is
// accepted unless Exclusive is set.
type Bound struct {
	Value     float64
	Exclusive bool
}

// belowMin reports whether v violates b as a lower bound.
func (b *Bound) belowMin(v float64) bool {
	if b == nil {
		return false
	}
	return v < b.Value || (b.Exclusive && v == b.Value)
}

// aboveMax reports whether v violates b as an upper bound.
func (b *Bound) aboveMax(v float64) bool {
	if b == nil {
		return false
	}
	return v > b.Value || (b.Exclusive && v == b.Value)
}

// bandText renders a min/max bound pair for messages, always including the
// configured bound values.
func bandText(min, max *Bound) string {
	format := func(b *Bound) string {
		return strconv.FormatFloat(b.Value, 'f', -1, 64)
	}
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("(%s-%s)", format(min), format(max))
	case min != nil:
		return fmt.Sprintf("(min %s)", format(min))
	case max != nil:
		return fmt.Sprintf("(max %s)", format(max))
	default:
		return "(unbounded)"
	}
}

// StringRule accepts string values, optionally restricted to an allowed set.
type StringRule struct {
	// Allowed is the enumeration of acceptable values; empty means any
	// non-empty string is acceptable
	Allowed []string
	// AllowEmpty permits the empty string when no Allowed set is configured
	AllowEmpty bool
}

// Check implements Rule. The normalized value is the raw string unchanged.
func (r StringRule) Check(field string, v sidecar.Value) Outcome {
	out := Outcome{Value: v.Raw()}

	if v.Kind() != sidecar.KindString {
		out.Errors = append(out.Errors, fmt.Sprintf("Missing or invalid '%s' (should be a string)", field))
		return out
	}

	s := v.Str()
	out.Value = s

	if len(r.Allowed) > 0 {
		for _, allowed := range r.Allowed {
			if s == allowed {
				return out
			}
		}
		out.Errors = append(out.Errors,
			fmt.Sprintf("Invalid '%s': %s. Expected one of [%s]", field, s, strings.Join(r.Allowed, ", ")))
		return out
	}

	if s == "" && !r.AllowEmpty {
		out.Errors = append(out.Errors, fmt.Sprintf("Missing or invalid '%s'", field))
	}
	return out
}

// BoolRule accepts exactly true or false.
//
// The normalized value is the display string "Yes"/"No" derived from
// truthiness. Note that false, missing, and non-bool values all normalize to
// "No"; the distinction is carried by the error, not the value.
type BoolRule struct{}

// Check implements Rule.
func (BoolRule) Check(field string, v sidecar.Value) Outcome {
	out := Outcome{Value: "No"}
	if v.Truthy() {
		out.Value = "Yes"
	}

	if v.Kind() != sidecar.KindBool {
		out.Errors = append(out.Errors,
			fmt.Sprintf("Missing or invalid '%s' (should be true or false)", field))
	}
	return out
}

// NumberRule accepts a scalar number and checks it against two independent
// bands: hard error bounds and a typically narrower warning band. The error
// check runs first and suppresses the warning check for the same field.
type NumberRule struct {
	MinError   *Bound
	MaxError   *Bound
	MinWarning *Bound
	MaxWarning *Bound
}

// Check implements Rule. The normalized value is the raw number unchanged.
func (r NumberRule) Check(field string, v sidecar.Value) Outcome {
	out := Outcome{Value: v.Raw()}

	if v.Kind() != sidecar.KindNumber {
		out.Errors = append(out.Errors, fmt.Sprintf("Missing or invalid '%s' (should be a number)", field))
		return out
	}

	n := v.Number()
	out.Value = n

	if r.MinError.belowMin(n) || r.MaxError.aboveMax(n) {
		out.Errors = append(out.Errors,
			fmt.Sprintf("'%s' out of valid range %s", field, bandText(r.MinError, r.MaxError)))
		return out
	}

	if r.MinWarning.belowMin(n) || r.MaxWarning.aboveMax(n) {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("'%s' outside expected range %s, which may be unusual", field, bandText(r.MinWarning, r.MaxWarning)))
	}
	return out
}

// NumberArrayRule accepts a sequence of numbers, optionally of a fixed size,
// and checks every element against the configured bands. Each violating
// element contributes one message; an element's error suppresses that
// element's warning check only.
type NumberArrayRule struct {
	// Size is the required element count; 0 means unconstrained
	Size       int
	MinError   *Bound
	MaxError   *Bound
	MinWarning *Bound
	MaxWarning *Bound
}

// Check implements Rule. The normalized value is the raw array unchanged.
func (r NumberArrayRule) Check(field string, v sidecar.Value) Outcome {
	out := Outcome{Value: v.Raw()}

	if v.Kind() != sidecar.KindNumberArray {
		out.Errors = append(out.Errors, r.shapeError(field))
		return out
	}

	nums := v.Numbers()
	if r.Size > 0 && len(nums) != r.Size {
		out.Errors = append(out.Errors, r.shapeError(field))
		return out
	}

	for _, n := range nums {
		if r.MinError.belowMin(n) || r.MaxError.aboveMax(n) {
			out.Errors = append(out.Errors,
				fmt.Sprintf("'%s' out of valid range %s", field, bandText(r.MinError, r.MaxError)))
		} else if r.MinWarning.belowMin(n) || r.MaxWarning.aboveMax(n) {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("'%s' outside expected range %s, which may be unusual", field, bandText(r.MinWarning, r.MaxWarning)))
		}
	}
	return out
}

func (r NumberArrayRule) shapeError(field string) string {
	if r.Size > 0 {
		return fmt.Sprintf("Invalid '%s' (should be a list of %d numbers)", field, r.Size)
	}
	return fmt.Sprintf("Invalid '%s' (should be a list of numbers)", field)
}

// NumberOrArrayRule accepts either a scalar number or a number array,
// dispatching on the value's parse-time kind and delegating to the matching
// rule with this rule's own bands.
type NumberOrArrayRule struct {
	// Size constrains the array form only; 0 means unconstrained
	Size       int
	MinError   *Bound
	MaxError   *Bound
	MinWarning *Bound
	MaxWarning *Bound
}

// Check implements Rule.
func (r NumberOrArrayRule) Check(field string, v sidecar.Value) Outcome {
	if v.Kind() == sidecar.KindNumberArray {
		return NumberArrayRule{
			Size:       r.Size,
			MinError:   r.MinError,
			MaxError:   r.MaxError,
			MinWarning: r.MinWarning,
			MaxWarning: r.MaxWarning,
		}.Check(field, v)
	}
	return NumberRule{
		MinError:   r.MinError,
		MaxError:   r.MaxError,
		MinWarning: r.MinWarning,
		MaxWarning: r.MaxWarning,
	}.Check(field, v)
}
