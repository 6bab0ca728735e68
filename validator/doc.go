// Package validator checks ASL (arterial spin labeling) sidecar metadata
// against required and recommended parameter schemas.
//
// A Validator applies each schema entry to a loaded sidecar record: entries
// whose condition does not hold for the record are reported as not
// applicable, required entries that are absent produce errors, and present
// entries are checked by their field rule. Results are aggregated into a
// ValidationResult keyed by field name, or into a flat Report suitable for
// line-oriented output.
//
// Basic usage:
//
//	v := validator.New()
//	result, err := v.Validate("sub-01_asl.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Valid {
//	    for field, msg := range result.Errors {
//	        fmt.Printf("%s: %s\n", field, msg)
//	    }
//	}
//
// Or with functional options:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("sub-01_asl.json"),
//	    validator.WithIncludeWarnings(false),
//	)
package validator
