package schema

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Hanliang-Xu/asltools/aslerrors"
	"github.com/Hanliang-Xu/asltools/sidecar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	required, recommended, err := LoadFile(filepath.Join("..", "testdata", "rules.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ArterialSpinLabelingType",
		"BackgroundSuppression",
		"TotalAcquiredPairs",
		"AcquisitionVoxelSize",
		"LabelingDuration",
		"PostLabelingDelay",
	}, required.Fields(), "table order is preserved")

	assert.Equal(t, []string{
		"BackgroundSuppressionNumberPulses",
		"LabelingLocationDescription",
	}, recommended.Fields())
}

func TestLoadFileRuleShapes(t *testing.T) {
	required, recommended, err := LoadFile(filepath.Join("..", "testdata", "rules.yaml"))
	require.NoError(t, err)

	aslType, ok := required.Lookup("ArterialSpinLabelingType")
	require.True(t, ok)
	assert.Equal(t, StringRule{Allowed: []string{"PASL", "(P)CASL", "PCASL"}}, aslType.Rule)
	assert.True(t, aslType.Condition.Applies(sidecar.Record{}), "no when clause means always")

	voxel, ok := required.Lookup("AcquisitionVoxelSize")
	require.True(t, ok)
	assert.Equal(t, NumberArrayRule{
		Size:       3,
		MinError:   &Bound{Value: 0},
		MaxError:   &Bound{Value: 100},
		MinWarning: &Bound{Value: 1},
		MaxWarning: &Bound{Value: 10},
	}, voxel.Rule)

	// Scalar bound shorthand and mapping form both decode
	pairs, ok := required.Lookup("TotalAcquiredPairs")
	require.True(t, ok)
	assert.Equal(t, NumberRule{
		MinError:   &Bound{Value: 0},
		MinWarning: &Bound{Value: 0, Exclusive: true},
		MaxWarning: &Bound{Value: 10},
	}, pairs.Rule)

	duration, ok := required.Lookup("LabelingDuration")
	require.True(t, ok)
	assert.True(t, duration.Condition.Applies(sidecar.Record{"ArterialSpinLabelingType": "PCASL"}))
	assert.True(t, duration.Condition.Applies(sidecar.Record{"ArterialSpinLabelingType": "CASL"}))
	assert.False(t, duration.Condition.Applies(sidecar.Record{"ArterialSpinLabelingType": "PASL"}))

	pulses, ok := recommended.Lookup("BackgroundSuppressionNumberPulses")
	require.True(t, ok)
	assert.True(t, pulses.Condition.Applies(sidecar.Record{"BackgroundSuppression": true}))
	assert.False(t, pulses.Condition.Applies(sidecar.Record{"BackgroundSuppression": false}))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown rule kind", "required:\n  - field: X\n    rule:\n      type: decimal\n"},
		{"missing field name", "required:\n  - rule:\n      type: string\n"},
		{"missing rule type", "required:\n  - field: X\n    rule:\n      size: 3\n"},
		{"duplicate entry", "required:\n  - field: X\n    rule:\n      type: string\n  - field: X\n    rule:\n      type: bool\n"},
		{"not yaml", "{{unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, aslerrors.ErrSchema), "expected ErrSchema, got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join("..", "testdata", "no-such-rules.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, aslerrors.ErrLoad))
}

// TestBuiltinTables sanity-checks the built-in tables against the loader
// rules: unique ordered fields, and the documented conditional gating.
func TestBuiltinTables(t *testing.T) {
	required := Required()
	recommended := Recommended()

	seen := map[string]bool{}
	for _, e := range required {
		assert.False(t, seen[e.Field], "duplicate required field %s", e.Field)
		seen[e.Field] = true
		assert.NotNil(t, e.Rule, "required field %s has no rule", e.Field)
	}
	seen = map[string]bool{}
	for _, e := range recommended {
		assert.False(t, seen[e.Field], "duplicate recommended field %s", e.Field)
		seen[e.Field] = true
		assert.NotNil(t, e.Rule, "recommended field %s has no rule", e.Field)
	}

	pcaslRec := sidecar.Record{"ArterialSpinLabelingType": "PCASL"}
	paslRec := sidecar.Record{"ArterialSpinLabelingType": "PASL"}

	duration, _ := required.Lookup("LabelingDuration")
	assert.True(t, duration.Condition.Applies(pcaslRec))
	assert.False(t, duration.Condition.Applies(paslRec))

	inversion, _ := required.Lookup("InversionTime")
	assert.False(t, inversion.Condition.Applies(pcaslRec))
	assert.True(t, inversion.Condition.Applies(paslRec))

	venc, _ := recommended.Lookup("VascularCrushingVENC")
	assert.False(t, venc.Condition.Applies(pcaslRec))
	assert.True(t, venc.Condition.Applies(sidecar.Record{"VascularCrushing": true}))
}
