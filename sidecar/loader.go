package sidecar

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/Hanliang-Xu/asltools/aslerrors"
)

// Loader handles sidecar document loading.
type Loader struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// NewLoader creates a new Loader instance with default settings
func NewLoader() *Loader {
	return &Loader{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source sidecar file
type SourceFormat string

const (
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// LoadResult contains the loaded sidecar record and source metadata.
//
// Callers should treat the Record as read-only after loading; the validator
// packages never mutate it.
type LoadResult struct {
	// Record is the parsed sidecar document
	Record Record
	// SourcePath is the input path the record was read from
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
}

// Load reads and parses a sidecar file.
// A missing or unreadable file yields an error matching aslerrors.ErrLoad;
// content that is not a valid JSON/YAML object yields an error matching
// aslerrors.ErrParse. Both are fatal for the run: no partial record is
// produced.
func (l *Loader) Load(path string) (*LoadResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		l.log().Error("failed to read sidecar file", "path", path, "error", err)
		return nil, &aslerrors.LoadError{Path: path, Cause: err}
	}

	res, err := l.loadBytes(data, path)
	if err != nil {
		return nil, err
	}

	res.SourcePath = path
	res.LoadTime = loadTime

	// Prefer extension-based detection; fall back to content sniffing
	if format := detectFormatFromPath(path); format != SourceFormatUnknown {
		res.SourceFormat = format
	}

	l.log().Debug("loaded sidecar", "path", path, "fields", len(res.Record), "format", res.SourceFormat)
	return res, nil
}

// LoadReader reads and parses a sidecar document from an io.Reader.
// Since there is no file path, SourcePath is set to LoadReader.json or
// LoadReader.yaml to match the detected format.
func (l *Loader) LoadReader(r io.Reader) (*LoadResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &aslerrors.LoadError{Message: "failed to read data", Cause: err}
	}

	res, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "LoadReader." + string(res.SourceFormat)
	return res, nil
}

// LoadBytes parses a sidecar document from a byte slice.
// Since there is no file path, SourcePath is set to LoadBytes.json or
// LoadBytes.yaml to match the detected format.
func (l *Loader) LoadBytes(data []byte) (*LoadResult, error) {
	res, err := l.loadBytes(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "LoadBytes." + string(res.SourceFormat)
	return res, nil
}

// loadBytes parses data into a Record. sourcePath is used only for error
// reporting.
func (l *Loader) loadBytes(data []byte, sourcePath string) (*LoadResult, error) {
	res := &LoadResult{
		SourceSize:   int64(len(data)),
		SourceFormat: detectFormatFromContent(data),
	}

	var record Record

	// JSON fast-path: skip the YAML decoder when the content is JSON
	if res.SourceFormat == SourceFormatJSON {
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, &aslerrors.ParseError{Path: sourcePath, Message: "invalid JSON object", Cause: err}
		}
	} else {
		if err := yaml.Unmarshal(data, &record); err != nil {
			return nil, &aslerrors.ParseError{Path: sourcePath, Message: "invalid YAML object", Cause: err}
		}
	}

	if record == nil {
		return nil, &aslerrors.ParseError{Path: sourcePath, Message: "document is empty or not a key-value object"}
	}

	res.Record = record
	return res, nil
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON objects start with '{', while YAML documents typically do not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")

	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}

	return SourceFormatYAML
}
