// Package asltools provides tools for validating arterial spin labeling (ASL)
// MRI metadata sidecars against the ASL acquisition parameter rules.
//
// ASL sidecars are the JSON key-value documents that accompany ASL image
// series and describe how the acquisition was performed (labeling scheme,
// background suppression, labeling duration, post-labeling delay, and so on).
// asltools checks required and recommended parameters against type, range,
// and conditional-presence rules and reports hard errors, soft warnings, and
// the extracted parameter values.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - sidecar: Load and inspect ASL metadata sidecar documents
//   - schema: Declarative rule tables (field rules and applicability conditions)
//   - validator: Schema-driven validation of a sidecar record
//   - aslrules: Procedural per-parameter checks and value extraction
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/Hanliang-Xu/asltools
//
// # Quick Start
//
// Load an ASL sidecar:
//
//	import "github.com/Hanliang-Xu/asltools/sidecar"
//
//	l := sidecar.NewLoader()
//	result, err := l.Load("sub-01_asl.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Fields: %d\n", len(result.Record))
//
// Validate an ASL sidecar:
//
//	import "github.com/Hanliang-Xu/asltools/validator"
//
//	v := validator.New()
//	result, err := v.Validate("sub-01_asl.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		fmt.Printf("Found %d errors\n", result.ErrorCount)
//	}
//
// Extract parameter values with the procedural checks:
//
//	import "github.com/Hanliang-Xu/asltools/aslrules"
//
//	report := aslrules.ExtractReport(record)
//	for _, e := range report.AllErrors() {
//		fmt.Println(e)
//	}
//
// # Command Line
//
// The asltools command exposes the same functionality:
//
//	asltools validate sub-01_asl.json
//	asltools extract sub-01_asl.json
//	asltools mcp
package asltools
