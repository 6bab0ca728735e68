package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidecarInput_ResolveContent(t *testing.T) {
	sidecarCache.reset()

	s := sidecarInput{Content: validSidecarContent}
	result, err := s.resolve()
	require.NoError(t, err)
	assert.Equal(t, "PCASL", result.Record["ArterialSpinLabelingType"])
}

func TestSidecarInput_ResolveFile(t *testing.T) {
	sidecarCache.reset()

	path := filepath.Join(t.TempDir(), "asl.json")
	require.NoError(t, os.WriteFile(path, []byte(validSidecarContent), 0o644))

	s := sidecarInput{File: path}
	result, err := s.resolve()
	require.NoError(t, err)
	assert.Equal(t, "PCASL", result.Record["ArterialSpinLabelingType"])
}

func TestSidecarInput_ExactlyOneSource(t *testing.T) {
	_, err := sidecarInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")

	_, err = sidecarInput{File: "a.json", Content: "{}"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")
}

func TestSidecarInput_InlineSizeLimit(t *testing.T) {
	sidecarCache.reset()
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	defer func() { cfg.MaxInlineSize = old }()

	_, err := sidecarInput{Content: validSidecarContent}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSidecarCache_ContentHit(t *testing.T) {
	sidecarCache.reset()

	s := sidecarInput{Content: validSidecarContent}
	first, err := s.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, sidecarCache.size())

	second, err := s.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSidecarCache_FileKeyIncludesModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asl.json")
	require.NoError(t, os.WriteFile(path, []byte(validSidecarContent), 0o644))

	key1 := makeCacheKey(sidecarInput{File: path})
	require.NotEmpty(t, key1)

	// Bump the mtime so the key changes
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	key2 := makeCacheKey(sidecarInput{File: path})
	assert.NotEqual(t, key1, key2)
}

func TestSidecarCache_Expiry(t *testing.T) {
	sidecarCache.reset()

	s := sidecarInput{Content: validSidecarContent}
	key := makeCacheKey(s)
	require.NotEmpty(t, key)

	result, err := s.resolve()
	require.NoError(t, err)

	// Overwrite with an already expired entry
	sidecarCache.putWithTTL(key, result, -time.Second)
	assert.Nil(t, sidecarCache.get(key))
	assert.Equal(t, 0, sidecarCache.size())
}

func TestSidecarCache_Eviction(t *testing.T) {
	sidecarCache.reset()
	oldMax := sidecarCache.maxSize
	sidecarCache.maxSize = 2
	defer func() { sidecarCache.maxSize = oldMax }()

	s := sidecarInput{Content: validSidecarContent}
	result, err := s.resolve()
	require.NoError(t, err)

	sidecarCache.reset()
	sidecarCache.putWithTTL("a", result, time.Minute)
	sidecarCache.putWithTTL("b", result, time.Minute)
	sidecarCache.putWithTTL("c", result, time.Minute)

	assert.Equal(t, 2, sidecarCache.size())
	assert.Nil(t, sidecarCache.get("a"))
}
