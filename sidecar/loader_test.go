package sidecar

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hanliang-Xu/asltools/aslerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	l := NewLoader()
	testFile := filepath.Join("..", "testdata", "sub-01_asl.json")

	result, err := l.Load(testFile)
	require.NoError(t, err)

	assert.Equal(t, testFile, result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Greater(t, result.SourceSize, int64(0))

	assert.Equal(t, "PCASL", result.Record.Get("ArterialSpinLabelingType").Str())
	assert.Equal(t, 1.8, result.Record.Get("LabelingDuration").Number())
	assert.Equal(t, []float64{3, 3, 3}, result.Record.Get("AcquisitionVoxelSize").Numbers())
	assert.True(t, result.Record.Get("BackgroundSuppression").Bool())
}

func TestLoadYAML(t *testing.T) {
	l := NewLoader()
	testFile := filepath.Join("..", "testdata", "sub-03_asl.yaml")

	result, err := l.Load(testFile)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "PCASL", result.Record.Get("ArterialSpinLabelingType").Str())
	assert.Equal(t, KindNumberArray, result.Record.Get("AcquisitionVoxelSize").Kind())
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader()

	result, err := l.Load(filepath.Join("..", "testdata", "no-such-file.json"))
	require.Error(t, err)
	assert.Nil(t, result)

	assert.True(t, errors.Is(err, aslerrors.ErrLoad), "missing file should match ErrLoad")
	assert.False(t, errors.Is(err, aslerrors.ErrParse), "missing file should not match ErrParse")

	var loadErr *aslerrors.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Path, "no-such-file.json")
}

func TestLoadMalformedJSON(t *testing.T) {
	l := NewLoader()

	result, err := l.Load(filepath.Join("..", "testdata", "malformed.json"))
	require.Error(t, err)
	assert.Nil(t, result)

	assert.True(t, errors.Is(err, aslerrors.ErrParse), "malformed content should match ErrParse")
	assert.False(t, errors.Is(err, aslerrors.ErrLoad), "malformed content should not match ErrLoad")
}

func TestLoadBytes(t *testing.T) {
	l := NewLoader()

	result, err := l.LoadBytes([]byte(`{"ArterialSpinLabelingType": "PASL", "InversionTime": 1.2}`))
	require.NoError(t, err)

	assert.Equal(t, "LoadBytes.json", result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, 1.2, result.Record.Get("InversionTime").Number())
}

func TestLoadBytesYAML(t *testing.T) {
	l := NewLoader()

	result, err := l.LoadBytes([]byte("ArterialSpinLabelingType: PCASL\nLabelingDuration: 1.8\n"))
	require.NoError(t, err)

	assert.Equal(t, "LoadBytes.yaml", result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, 1.8, result.Record.Get("LabelingDuration").Number())
}

func TestLoadReader(t *testing.T) {
	l := NewLoader()

	result, err := l.LoadReader(strings.NewReader(`{"M0Type": "Separate"}`))
	require.NoError(t, err)

	assert.Equal(t, "LoadReader.json", result.SourcePath)
	assert.Equal(t, "Separate", result.Record.Get("M0Type").Str())
}

func TestLoadBytesNotAnObject(t *testing.T) {
	l := NewLoader()

	_, err := l.LoadBytes([]byte(`[1, 2, 3]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, aslerrors.ErrParse))
}

func TestLoadBytesEmpty(t *testing.T) {
	l := NewLoader()

	_, err := l.LoadBytes([]byte(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, aslerrors.ErrParse))
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("a/b/sub-01_asl.json"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("asl.yaml"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("asl.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("asl.txt"))
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  {\"a\": 1}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("a: 1\n")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte("   ")))
}
