package aslrules

import (
	"github.com/Hanliang-Xu/asltools/sidecar"
)

// GroupResult accumulates the outcome of checking one logical parameter
// group: flat message lists plus the extracted values keyed by display
// name.
type GroupResult struct {
	Errors   []string
	Warnings []string
	Values   map[string]any
}

// add folds one field check into the group under the given value key
func (g *GroupResult) add(key string, errors, warnings []string, value any) {
	g.Errors = append(g.Errors, errors...)
	g.Warnings = append(g.Warnings, warnings...)
	g.Values[key] = value
}

// GeneralParameters checks the required parameters every ASL acquisition
// carries, regardless of labeling type. Absent fields are checked with
// the zero-ish defaults the checks expect: a missing TotalAcquiredPairs
// defaults to -1, which sits exactly on the hard lower bound and so
// passes silently.
func GeneralParameters(rec sidecar.Record) GroupResult {
	g := GroupResult{Values: make(map[string]any)}

	e, w, v := splat(CheckASLType(rec.Get("ArterialSpinLabelingType").Str()))
	g.add("ArterialSpinLabelingType", e, w, v)
	e, w, v = splat(CheckBackgroundSuppression(rec.Get("BackgroundSuppression").Raw()))
	g.add("BackgroundSuppression", e, w, v)
	e, w, v = splat(CheckM0Method(rec.Get("M0Type").Str()))
	g.add("MethodForM0bEstimation", e, w, v)

	pairs := -1.0
	if v := rec.Get("TotalAcquiredPairs"); v.Kind() == sidecar.KindNumber {
		pairs = v.Number()
	}
	e, w, v = splat(CheckTotalPairs(pairs))
	g.add("TotalAcquiredPairs", e, w, v)

	var voxelSize []float64
	if v := rec.Get("AcquisitionVoxelSize"); v.Kind() == sidecar.KindNumberArray {
		voxelSize = v.Numbers()
	}
	e, w, v = splat(CheckVoxelSize(voxelSize))
	g.add("AcquisitionVoxelSize", e, w, v)

	return g
}

// RecommendedValues extracts the recommended parameters. This group never
// produces errors or warnings: inapplicable parameters read NotApplicable,
// applicable but missing ones read NotProvided.
func RecommendedValues(rec sidecar.Record) GroupResult {
	g := GroupResult{Values: make(map[string]any)}

	if rec.Get("BackgroundSuppression").Truthy() {
		g.Values["NumberOfBackgroundSuppressionPulses"] = rawOr(rec, "BackgroundSuppressionNumberPulses", NotProvided)
		g.Values["BackgroundSuppressionPulseTiming"] = rawOr(rec, "BackgroundSuppressionPulseTime", NotProvided)
		g.Values["BackgroundSuppressionTimingDefinition"] = rawOr(rec, "BackgroundSuppressionTimingDefinition", NotProvided)
	} else {
		g.Values["NumberOfBackgroundSuppressionPulses"] = NotApplicable
		g.Values["BackgroundSuppressionPulseTiming"] = NotApplicable
		g.Values["BackgroundSuppressionTimingDefinition"] = NotApplicable
	}

	g.Values["LabelingLocationDescription"] = rawOr(rec, "LabelingLocationDescription", NotProvided)
	g.Values["ShimVolume"] = rawOr(rec, "ShimVolume", NotProvided)

	if rec.Get("VascularCrushing").Truthy() {
		g.Values["Venc"] = rawOr(rec, "Venc", NotProvided)
		g.Values["b"] = rawOr(rec, "b", NotProvided)
	} else {
		g.Values["Venc"] = NotApplicable
		g.Values["b"] = NotApplicable
	}

	return g
}

// PCASLRequiredParameters checks the labeling parameters demanded by
// pseudo-continuous labeling. The gate accepts either
// ArterialSpinLabelingType equal to "PCASL" or the legacy field
// ArterialSpinType equal to "(P)CASL"; records matching neither read
// NotApplicable for both parameters.
func PCASLRequiredParameters(rec sidecar.Record) GroupResult {
	g := GroupResult{Values: make(map[string]any)}

	pcasl := rec.Get("ArterialSpinLabelingType").Str() == "PCASL" ||
		rec.Get("ArterialSpinType").Str() == "(P)CASL"
	if !pcasl {
		g.Values["LabelingDuration"] = NotApplicable
		g.Values["PostLabelingDelay"] = NotApplicable
		return g
	}

	if v := rec.Get("LabelingDuration"); v.IsAbsent() {
		g.Errors = append(g.Errors, "Required labeling duration parameter for pcasl not provided")
	} else {
		e, w, val := splat(CheckLabelingDuration(v.Number()))
		g.add("LabelingDuration", e, w, val)
	}

	if v := rec.Get("PostLabelingDelay"); v.IsAbsent() {
		g.Errors = append(g.Errors, "Required post labeling delay parameter for pcasl not provided")
	} else {
		e, w, val := splat(CheckPostLabelingDelay(v.Number()))
		g.add("PostLabelingDelay", e, w, val)
	}

	return g
}

// Report combines the three parameter groups over one record.
type Report struct {
	General     GroupResult
	Recommended GroupResult
	PCASL       GroupResult
}

// ExtractReport runs all three parameter groups against the record.
func ExtractReport(rec sidecar.Record) *Report {
	return &Report{
		General:     GeneralParameters(rec),
		Recommended: RecommendedValues(rec),
		PCASL:       PCASLRequiredParameters(rec),
	}
}

// AllErrors concatenates the group error lists in group order.
func (r *Report) AllErrors() []string {
	return concat(r.General.Errors, r.Recommended.Errors, r.PCASL.Errors)
}

// AllWarnings concatenates the group warning lists in group order.
func (r *Report) AllWarnings() []string {
	return concat(r.General.Warnings, r.Recommended.Warnings, r.PCASL.Warnings)
}

// HasErrors reports whether any group produced an error.
func (r *Report) HasErrors() bool {
	return len(r.General.Errors)+len(r.Recommended.Errors)+len(r.PCASL.Errors) > 0
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// rawOr returns the raw field value, or fallback when absent
func rawOr(rec sidecar.Record, field string, fallback any) any {
	if rec.Has(field) {
		return rec[field]
	}
	return fallback
}

// splat adapts a typed check result to the any-valued add helper
func splat[T any](errors, warnings []string, value T) ([]string, []string, any) {
	return errors, warnings, value
}
