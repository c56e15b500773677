package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "keras-tuner/tuners/", Path("keras-tuner/tuners/")},
		{"File", KeyFile, "random.md", File("random.md")},
		{"Page", KeyPage, "keras-tuner/hyperparameters", Page("keras-tuner/hyperparameters")},
		{"Title", KeyTitle, "Tuners", Title("Tuners")},
		{"Symbol", KeySymbol, "kerastuner.Tuner", Symbol("kerastuner.Tuner")},
		{"Rule", KeyRule, "sibling-path-unique", Rule("sibling-path-unique")},
		{"Severity", KeySeverity, "ERROR", Severity("ERROR")},
		{"Format", KeyFormat, "yaml", Format("yaml")},
		{"Source", KeySource, "builtin", Source("builtin")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s key mismatch: got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s value mismatch: got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Count(13); a.Key != KeyCount || a.Value.Int64() != 13 {
		t.Fatalf("unexpected count attr: %v", a)
	}
	if a := DurationMS(1.5); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Fatalf("unexpected duration attr: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should produce empty value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr: %v", a)
	}
}
