// Package lint detects structural malformation in documentation trees.
package lint

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that should be fixed but don't block generation.
	SeverityWarning
	// SeverityError indicates issues that make the tree unusable for the generator.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single problem found in a tree node.
type Issue struct {
	NodePath string   // Accumulated path of the offending node
	Severity Severity // Issue severity level
	Rule     string   // Rule identifier (e.g., "sibling-path-unique")
	Message  string   // Brief description of the issue
	Fix      string   // Suggested fix
}

// Result contains all issues found during linting.
type Result struct {
	Issues     []Issue
	NodesTotal int // Total nodes visited
	PagesTotal int // Leaf nodes visited
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool {
	return r.WarningCount() > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(SeverityWarning)
}

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// ByRule groups issues by rule name.
func (r *Result) ByRule() map[string][]Issue {
	out := make(map[string][]Issue)
	for _, issue := range r.Issues {
		out[issue.Rule] = append(out[issue.Rule], issue)
	}
	return out
}

// Config contains configuration for the linter.
type Config struct {
	// Quiet suppresses warnings, only showing errors.
	Quiet bool

	// Format specifies output format (text, json).
	Format string

	// Disabled lists rule names to skip.
	Disabled []string
}
