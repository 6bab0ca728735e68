// Package aslrules provides per-field check functions for ASL sidecar
// parameters, plus grouped extraction over a whole record.
//
// This is the procedural counterpart to the schema-driven validator
// package: each check function takes one raw parameter value and returns
// flat error and warning lists along with the value it derived. The group
// functions (GeneralParameters, RecommendedValues,
// PCASLRequiredParameters) walk a loaded record and accumulate results,
// and ExtractReport combines all three groups.
//
// The two layers deliberately differ in how they report uncheckable
// fields: this package distinguishes fields that are inapplicable
// (NotApplicable) from fields that were simply not given (NotProvided),
// while the engine's recommended pass folds both into one sentinel.
package aslrules
