package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestKtdocsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *KtdocsError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryFileSystem, SeverityFatal, "failed to read tree"),
			expected: "filesystem (fatal): failed to read tree: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestKtdocsError_WithContext(t *testing.T) {
	err := New(CategoryValidation, SeverityWarning, "bad node").
		WithContext("path", "keras-tuner/tuners/").
		WithContext("rule", "group-toc-required")

	if err.Context["path"] != "keras-tuner/tuners/" {
		t.Errorf("Context[path] = %v, want keras-tuner/tuners/", err.Context["path"])
	}
	if err.Context["rule"] != "group-toc-required" {
		t.Errorf("Context[rule] = %v, want group-toc-required", err.Context["rule"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	wrapped := fmt.Errorf("loading: %w", DecodeFailed("tree.yaml", fmt.Errorf("bad yaml")))
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match encoding category", configErr, CategoryEncoding, false},
		{"wrapped decode error matches encoding category", wrapped, CategoryEncoding, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory(plain) = %v, want %v", got, CategoryInternal)
	}
	if got := GetCategory(WriteFailed("out.md", nil)); got != CategoryFileSystem {
		t.Errorf("GetCategory(write) = %v, want %v", got, CategoryFileSystem)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/ktdocs.yaml")
		if err.Category != CategoryConfig {
			t.Errorf("Category = %v, want %v", err.Category, CategoryConfig)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["path"] != "/path/to/ktdocs.yaml" {
			t.Errorf("Context[path] = %v, want /path/to/ktdocs.yaml", err.Context["path"])
		}
	})

	t.Run("ReadFailed", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := ReadFailed("tree.json", cause)
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
	})

	t.Run("LintFailed", func(t *testing.T) {
		err := LintFailed(3, 1)
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["errors"] != 3 {
			t.Errorf("Context[errors] = %v, want 3", err.Context["errors"])
		}
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", fmt.Errorf("x"), 1},
		{"validation", LintFailed(1, 0), 2},
		{"encoding", DecodeFailed("a.json", fmt.Errorf("x")), 3},
		{"config", ConfigNotFound("c.yaml"), 7},
		{"filesystem", WriteFailed("a.md", fmt.Errorf("x")), 11},
		{"internal", InternalError("boom", nil), 10},
		{"wrapped", fmt.Errorf("ctx: %w", ConfigNotFound("c.yaml")), 7},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(test.err); got != test.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logBuf, outBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	adapter := NewCLIErrorAdapter(false, logger)
	adapter.out = &outBuf

	code := adapter.Report(ConfigNotFound("missing.yaml"))
	if code != 7 {
		t.Errorf("Report() = %d, want 7", code)
	}
	if outBuf.String() != "configuration file not found\n" {
		t.Errorf("unexpected output %q", outBuf.String())
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("category=config")) {
		t.Errorf("expected category in log output, got %q", logBuf.String())
	}
}

func TestCLIErrorAdapter_FormatVerbose(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, nil)
	err := WriteFailed("a.md", fmt.Errorf("disk full"))
	want := "filesystem (fatal): failed to write file: disk full"
	if got := adapter.FormatError(err); got != want {
		t.Errorf("FormatError() = %q, want %q", got, want)
	}
	quiet := NewCLIErrorAdapter(false, nil)
	if got := quiet.FormatError(err); got != "filesystem: failed to write file" {
		t.Errorf("FormatError() = %q", got)
	}
}
