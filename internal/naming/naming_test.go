package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanLabel(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"PostLabelingDelay", "Post Labeling Delay"},
		{"LabelingDuration", "Labeling Duration"},
		{"ArterialSpinLabelingType", "Arterial Spin Labeling Type"},
		{"BackgroundSuppression", "Background Suppression"},
		{"TotalAcquiredPairs", "Total Acquired Pairs"},
		{"AcquisitionVoxelSize", "Acquisition Voxel Size"},
		{"PCASLType", "PCASL Type"},
		{"VascularCrushingVENC", "Vascular Crushing VENC"},
		{"M0Type", "M0 Type"},
		{"ShimVolume", "Shim Volume"},
		{"Venc", "Venc"},
		{"b", "B"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanLabel(tt.field))
		})
	}
}

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"LabelingDuration", []string{"Labeling", "Duration"}},
		{"PCASLType", []string{"PCASL", "Type"}},
		{"M0Type", []string{"M0", "Type"}},
		{"lowercase", []string{"lowercase"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, splitCamel(tt.in), "splitCamel(%q)", tt.in)
	}
}
