package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
	}
}

// WithOutput directs user-facing messages to w instead of stderr.
func (a *CLIErrorAdapter) WithOutput(w io.Writer) *CLIErrorAdapter {
	a.out = w
	return a
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if ke, ok := As(err); ok {
		return a.exitCodeFromKtdocs(ke)
	}

	return 1
}

// exitCodeFromKtdocs maps KtdocsError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromKtdocs(err *KtdocsError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid input
	case CategoryEncoding:
		return 3 // Unreadable tree
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem:
		return 11 // Output error
	case CategoryRuntime:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ke, ok := As(err); ok {
		return a.formatKtdocs(ke)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatKtdocs formats a KtdocsError for display.
func (a *CLIErrorAdapter) formatKtdocs(err *KtdocsError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// Report logs and prints err and returns the exit code the process should use.
func (a *CLIErrorAdapter) Report(err error) int {
	if err == nil {
		return 0
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(a.out, "%s\n", a.FormatError(err))
	return a.ExitCodeFor(err)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if ke, ok := As(err); ok {
		return ke.Category == CategoryInternal ||
			ke.Category == CategoryRuntime ||
			ke.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if ke, ok := As(err); ok {
		level := a.slogLevelFromSeverity(ke.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(ke.Category)),
		}
		for k, v := range ke.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
		if ke.Cause != nil {
			attrs = append(attrs, slog.String("cause", ke.Cause.Error()))
		}

		a.logger.LogAttrs(context.Background(), level, ke.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts KtdocsError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
