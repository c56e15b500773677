package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyPage       = "page"
	KeyTitle      = "title"
	KeySymbol     = "symbol"
	KeyRule       = "rule"
	KeySeverity   = "severity"
	KeyCount      = "count"
	KeyFormat     = "format"
	KeySource     = "source"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Symbol(s string) slog.Attr       { return slog.String(KeySymbol, s) }
func Rule(r string) slog.Attr         { return slog.String(KeyRule, r) }
func Severity(s string) slog.Attr     { return slog.String(KeySeverity, s) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Source(s string) slog.Attr       { return slog.String(KeySource, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
