package aslerrors

import (
	"errors"
	"testing"
)

func TestLoadError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &LoadError{
			Path:    "/data/sub-01_asl.json",
			Message: "file not found",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "load error for /data/sub-01_asl.json: file not found: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &LoadError{}
		if err.Error() != "load error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &LoadError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrLoad", func(t *testing.T) {
		err := &LoadError{Message: "test"}
		if !errors.Is(err, ErrLoad) {
			t.Error("LoadError should match ErrLoad")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &LoadError{Message: "test"}
		if errors.Is(err, ErrParse) {
			t.Error("LoadError should not match ErrParse")
		}
		if errors.Is(err, ErrSchema) {
			t.Error("LoadError should not match ErrSchema")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := &ParseError{
			Path:    "sub-01_asl.json",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in sub-01_asl.json: invalid syntax: unexpected end of JSON input" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "asl.json"}
		if err.Error() != "parse error in asl.json" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &SchemaError{
			Field:   "LabelingDuration",
			Message: "unknown rule kind \"decimal\"",
		}

		msg := err.Error()
		if msg != "schema error for LabelingDuration: unknown rule kind \"decimal\"" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is matches ErrSchema", func(t *testing.T) {
		err := &SchemaError{Message: "test"}
		if !errors.Is(err, ErrSchema) {
			t.Error("SchemaError should match ErrSchema")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("SchemaError should not match ErrConfig")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "format",
			Value:   "xml",
			Message: "unsupported output format",
		}

		msg := err.Error()
		if msg != "configuration error for format (value: xml): unsupported output format" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

// TestErrorsAs verifies errors.As extracts the typed error through wrapping.
func TestErrorsAs(t *testing.T) {
	wrapped := errJoin(&LoadError{Path: "missing.json", Cause: errors.New("no such file")})

	var loadErr *LoadError
	if !errors.As(wrapped, &loadErr) {
		t.Fatal("errors.As should extract *LoadError through wrapping")
	}
	if loadErr.Path != "missing.json" {
		t.Errorf("unexpected path: %s", loadErr.Path)
	}
}

func errJoin(err error) error {
	return &wrapper{err: err}
}

type wrapper struct{ err error }

func (w *wrapper) Error() string { return "outer: " + w.err.Error() }
func (w *wrapper) Unwrap() error { return w.err }
