package aslrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanliang-Xu/asltools/sidecar"
)

func pcaslRecord() sidecar.Record {
	return sidecar.Record{
		"ArterialSpinLabelingType": "PCASL",
		"BackgroundSuppression":    true,
		"M0Type":                   "Separate",
		"TotalAcquiredPairs":       5.0,
		"AcquisitionVoxelSize":     []any{3.0, 3.0, 3.0},
		"LabelingDuration":         1.8,
		"PostLabelingDelay":        1.8,
	}
}

// TestGeneralParameters tests the general required group on a clean record
func TestGeneralParameters(t *testing.T) {
	g := GeneralParameters(pcaslRecord())

	assert.Empty(t, g.Errors)
	assert.Empty(t, g.Warnings)

	assert.Equal(t, "PCASL", g.Values["ArterialSpinLabelingType"])
	assert.Equal(t, "Yes", g.Values["BackgroundSuppression"])
	assert.Equal(t, "Separate", g.Values["MethodForM0bEstimation"])
	assert.Equal(t, 5.0, g.Values["TotalAcquiredPairs"])
	assert.Equal(t, []float64{3, 3, 3}, g.Values["AcquisitionVoxelSize"])
}

// TestGeneralParametersEmptyRecord tests the defaults used for absent
// fields
func TestGeneralParametersEmptyRecord(t *testing.T) {
	g := GeneralParameters(sidecar.Record{})

	// ASL type, background suppression, M0 method, and voxel size all
	// error when absent
	assert.Len(t, g.Errors, 4)

	// A missing TotalAcquiredPairs defaults to -1, which sits on the hard
	// floor and passes without error or warning
	assert.Equal(t, -1.0, g.Values["TotalAcquiredPairs"])
	assert.Empty(t, g.Warnings)
}

// TestGeneralParametersZeroPairs tests that zero pairs only warns
func TestGeneralParametersZeroPairs(t *testing.T) {
	rec := pcaslRecord()
	rec["TotalAcquiredPairs"] = 0.0

	g := GeneralParameters(rec)

	assert.Empty(t, g.Errors)
	require.Len(t, g.Warnings, 1)
	assert.Contains(t, g.Warnings[0], "TotalAcquiredPairs")
}

// TestGeneralParametersVoxelWarning tests the per-element warning band
func TestGeneralParametersVoxelWarning(t *testing.T) {
	rec := pcaslRecord()
	rec["AcquisitionVoxelSize"] = []any{0.5, 3.0, 3.0}

	g := GeneralParameters(rec)

	assert.Empty(t, g.Errors)
	require.Len(t, g.Warnings, 1)
	assert.Contains(t, g.Warnings[0], "AcquisitionVoxelSize")
}

// TestRecommendedValues tests sentinel selection for recommended fields
func TestRecommendedValues(t *testing.T) {
	t.Run("background suppression on", func(t *testing.T) {
		g := RecommendedValues(sidecar.Record{
			"BackgroundSuppression":             true,
			"BackgroundSuppressionNumberPulses": 4.0,
		})

		assert.Empty(t, g.Errors)
		assert.Empty(t, g.Warnings)
		assert.Equal(t, 4.0, g.Values["NumberOfBackgroundSuppressionPulses"])
		// Applicable but missing reads NotProvided
		assert.Equal(t, NotProvided, g.Values["BackgroundSuppressionPulseTiming"])
		assert.Equal(t, NotProvided, g.Values["BackgroundSuppressionTimingDefinition"])
	})

	t.Run("background suppression off", func(t *testing.T) {
		g := RecommendedValues(sidecar.Record{"BackgroundSuppression": false})

		assert.Equal(t, NotApplicable, g.Values["NumberOfBackgroundSuppressionPulses"])
		assert.Equal(t, NotApplicable, g.Values["BackgroundSuppressionPulseTiming"])
	})

	t.Run("vascular crushing", func(t *testing.T) {
		g := RecommendedValues(sidecar.Record{
			"VascularCrushing": true,
			"Venc":             2.0,
		})

		assert.Equal(t, 2.0, g.Values["Venc"])
		assert.Equal(t, NotProvided, g.Values["b"])
	})

	t.Run("no vascular crushing", func(t *testing.T) {
		g := RecommendedValues(sidecar.Record{})

		assert.Equal(t, NotApplicable, g.Values["Venc"])
		assert.Equal(t, NotApplicable, g.Values["b"])
	})

	t.Run("unconditional fallbacks", func(t *testing.T) {
		g := RecommendedValues(sidecar.Record{
			"LabelingLocationDescription": "neck",
		})

		assert.Equal(t, "neck", g.Values["LabelingLocationDescription"])
		assert.Equal(t, NotProvided, g.Values["ShimVolume"])
	})
}

// TestPCASLRequiredParameters tests the pseudo-continuous labeling gate
func TestPCASLRequiredParameters(t *testing.T) {
	t.Run("pcasl with both parameters", func(t *testing.T) {
		g := PCASLRequiredParameters(pcaslRecord())

		assert.Empty(t, g.Errors)
		assert.Equal(t, 1.8, g.Values["LabelingDuration"])
		assert.Equal(t, 1.8, g.Values["PostLabelingDelay"])
	})

	t.Run("pcasl missing both", func(t *testing.T) {
		g := PCASLRequiredParameters(sidecar.Record{
			"ArterialSpinLabelingType": "PCASL",
		})

		require.Len(t, g.Errors, 2)
		assert.Equal(t, "Required labeling duration parameter for pcasl not provided", g.Errors[0])
		assert.Equal(t, "Required post labeling delay parameter for pcasl not provided", g.Errors[1])
		assert.Empty(t, g.Values)
	})

	t.Run("legacy gate field", func(t *testing.T) {
		g := PCASLRequiredParameters(sidecar.Record{
			"ArterialSpinType":  "(P)CASL",
			"LabelingDuration":  1.8,
			"PostLabelingDelay": 1.8,
		})

		assert.Empty(t, g.Errors)
		assert.Equal(t, 1.8, g.Values["LabelingDuration"])
	})

	t.Run("not pcasl", func(t *testing.T) {
		g := PCASLRequiredParameters(sidecar.Record{
			"ArterialSpinLabelingType": "PASL",
		})

		assert.Empty(t, g.Errors)
		assert.Equal(t, NotApplicable, g.Values["LabelingDuration"])
		assert.Equal(t, NotApplicable, g.Values["PostLabelingDelay"])
	})

	t.Run("unusual duration warns", func(t *testing.T) {
		rec := pcaslRecord()
		rec["LabelingDuration"] = 0.5

		g := PCASLRequiredParameters(rec)

		assert.Empty(t, g.Errors)
		require.Len(t, g.Warnings, 1)
		assert.Contains(t, g.Warnings[0], "LabelingDuration")
	})
}

// TestExtractReport tests the combined three-group report
func TestExtractReport(t *testing.T) {
	rep := ExtractReport(pcaslRecord())

	assert.False(t, rep.HasErrors())
	assert.Empty(t, rep.AllErrors())
	assert.Empty(t, rep.AllWarnings())
	assert.Equal(t, "PCASL", rep.General.Values["ArterialSpinLabelingType"])
	assert.Equal(t, 1.8, rep.PCASL.Values["LabelingDuration"])
	assert.Equal(t, NotProvided, rep.Recommended.Values["LabelingLocationDescription"])
}

// TestExtractReportBrokenRecord tests error accumulation across groups
func TestExtractReportBrokenRecord(t *testing.T) {
	rep := ExtractReport(sidecar.Record{
		"ArterialSpinLabelingType": "PCASL",
		"BackgroundSuppression":    true,
		"M0Type":                   "Separate",
		"TotalAcquiredPairs":       5.0,
		"AcquisitionVoxelSize":     []any{3.0, 3.0, 3.0},
	})

	assert.True(t, rep.HasErrors())
	// Both pseudo-continuous labeling parameters are missing
	assert.Len(t, rep.AllErrors(), 2)
}
