// Package sidecar loads ASL metadata sidecar documents and exposes them as
// loosely-typed records.
//
// A sidecar is a flat JSON (or YAML) object mapping acquisition parameter
// names to strings, booleans, numbers, or fixed-size number arrays. The
// package parses a document once into a [Record] and classifies each raw
// value into a [Value] with a parse-time kind tag, so downstream rule
// checking dispatches on the tag instead of reflecting on interface values.
//
// Loading a record:
//
//	l := sidecar.NewLoader()
//	result, err := l.Load("sub-01_asl.json")
//	if err != nil {
//	    // aslerrors.ErrLoad: file missing/unreadable
//	    // aslerrors.ErrParse: content is not valid JSON/YAML
//	}
//	v := result.Record.Get("LabelingDuration")
//	if v.Kind() == sidecar.KindNumber {
//	    fmt.Println(v.Number())
//	}
//
// Records are read-only after loading. Loading performs the only I/O in the
// library; validation of a loaded record is a pure computation.
package sidecar
