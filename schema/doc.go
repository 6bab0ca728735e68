// Package schema defines the declarative rule tables that drive ASL sidecar
// validation.
//
// A rule table pairs each parameter name with one field [Rule] (type, allowed
// values, numeric bands) and one applicability [Condition] (a conjunction of
// expectations over other fields). Two tables exist side by side: required
// parameters and recommended parameters. The built-in tables from
// [Required] and [Recommended] cover the standard ASL parameter set; custom
// tables can be loaded from a YAML document with [LoadFile] or [Parse].
//
// Tables are constructed once and are immutable thereafter; checking a value
// against a rule is a pure computation, so schemas are safe for concurrent
// use.
package schema
