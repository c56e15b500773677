package lint

import (
	"log/slog"
	"slices"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
)

// Linter applies rules to every node of a documentation tree.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a new linter with the given configuration.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}

	rules := make([]Rule, 0, len(DefaultRules()))
	for _, r := range DefaultRules() {
		if slices.Contains(cfg.Disabled, r.Name()) {
			slog.Debug("Lint rule disabled", logfields.Rule(r.Name()))
			continue
		}
		rules = append(rules, r)
	}

	return &Linter{cfg: cfg, rules: rules}
}

// Rules returns the names of the active rules.
func (l *Linter) Rules() []string {
	names := make([]string, 0, len(l.rules))
	for _, r := range l.rules {
		names = append(names, r.Name())
	}
	return names
}

// Lint checks root and every descendant. Issues are reported in traversal
// order; warnings are dropped in quiet mode.
func (l *Linter) Lint(root doctree.PageNode) *Result {
	result := &Result{Issues: []Issue{}}

	_ = doctree.Walk(&root, func(node *doctree.PageNode, _ int, fullPath string) error {
		result.NodesTotal++
		if node.IsLeaf() {
			result.PagesTotal++
		}
		for _, rule := range l.rules {
			for _, issue := range rule.Check(node, fullPath) {
				if l.cfg.Quiet && issue.Severity < SeverityError {
					continue
				}
				result.Issues = append(result.Issues, issue)
			}
		}
		return nil
	})

	slog.Debug("Lint completed",
		logfields.Count(result.NodesTotal),
		slog.Int("errors", result.ErrorCount()),
		slog.Int("warnings", result.WarningCount()))
	return result
}
