// Package issues provides a unified issue type for sidecar validation problems.
package issues

import (
	"fmt"

	"github.com/Hanliang-Xu/asltools/internal/severity"
)

// Issue represents a single problem found while checking one sidecar field.
type Issue struct {
	// Field is the sidecar field name the issue relates to (e.g., "LabelingDuration")
	Field string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Field == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Field, i.Message)
}
