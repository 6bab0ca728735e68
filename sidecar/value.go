package sidecar

import "encoding/json"

// Kind classifies the runtime shape of a sidecar value.
// The kind is chosen once when the raw value is first seen; rule checking
// dispatches on it rather than re-inspecting the interface value.
type Kind int

const (
	// KindAbsent indicates the field is not present in the record.
	// Absent is distinct from every concrete value, including false.
	KindAbsent Kind = iota
	// KindString indicates a string value.
	KindString
	// KindBool indicates a bool value (exactly true or false).
	KindBool
	// KindNumber indicates a scalar numeric value.
	KindNumber
	// KindNumberArray indicates a sequence whose elements are all numeric.
	KindNumberArray
	// KindOther indicates a value of any other shape (nested object,
	// mixed-type array, null). Rules treat these as malformed.
	KindOther
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindNumberArray:
		return "number array"
	default:
		return "other"
	}
}

// Value is a tagged view of one raw sidecar value.
type Value struct {
	kind Kind
	raw  any
	str  string
	b    bool
	num  float64
	nums []float64
}

// Absent returns the Value representing a missing field.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// ValueOf classifies a raw decoded value.
// Numeric scalars of any Go integer or float type map to KindNumber.
// Sequences map to KindNumberArray only when every element is numeric.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case string:
		return Value{kind: KindString, raw: raw, str: v}
	case bool:
		return Value{kind: KindBool, raw: raw, b: v}
	case []any:
		nums := make([]float64, 0, len(v))
		for _, elem := range v {
			n, ok := toFloat(elem)
			if !ok {
				return Value{kind: KindOther, raw: raw}
			}
			nums = append(nums, n)
		}
		return Value{kind: KindNumberArray, raw: raw, nums: nums}
	case []float64:
		nums := make([]float64, len(v))
		copy(nums, v)
		return Value{kind: KindNumberArray, raw: raw, nums: nums}
	case []int:
		nums := make([]float64, len(v))
		for i, n := range v {
			nums[i] = float64(n)
		}
		return Value{kind: KindNumberArray, raw: raw, nums: nums}
	case nil:
		return Value{kind: KindOther, raw: raw}
	}
	if n, ok := toFloat(raw); ok {
		return Value{kind: KindNumber, raw: raw, num: n}
	}
	return Value{kind: KindOther, raw: raw}
}

// toFloat converts any Go numeric type to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Kind returns the parse-time kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the field is missing from the record.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Raw returns the underlying decoded value (nil when absent).
func (v Value) Raw() any { return v.raw }

// Str returns the string content. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Bool returns the bool content. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric content. Valid only for KindNumber.
func (v Value) Number() float64 { return v.num }

// Numbers returns the numeric elements. Valid only for KindNumberArray.
func (v Value) Numbers() []float64 { return v.nums }

// Truthy reports whether the value would be treated as "set and true-like":
// a true bool, a non-empty string, a non-zero number, or a non-empty array.
// Absent values are never truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.str != ""
	case KindNumber:
		return v.num != 0
	case KindNumberArray:
		return len(v.nums) > 0
	default:
		return false
	}
}
