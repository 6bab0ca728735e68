// Package severity provides severity level constants and utilities
// for issues reported by the validator and aslrules packages.
//
// The severity levels are ordered from most to least severe:
// Error > Warning > Info
package severity

// Severity indicates the severity level of an issue found while checking
// an ASL metadata sidecar.
type Severity int

const (
	// SeverityError indicates a rule violation that makes the sidecar invalid:
	// a missing required parameter, a value outside its hard bounds, a
	// malformed array, or a value outside an allowed enumeration.
	SeverityError Severity = iota

	// SeverityWarning indicates a value inside its hard bounds but outside
	// the usual expected band. Warnings never block use of the value.
	SeverityWarning

	// SeverityInfo indicates informational messages about extracted values.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}
