package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/ktdocs/internal/config"
	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/lint"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"git.home.luguber.info/inful/ktdocs/internal/metrics"
	"git.home.luguber.info/inful/ktdocs/internal/treeio"
	"git.home.luguber.info/inful/ktdocs/internal/watch"
)

// builtinSource names the built-in descriptor in lint output.
const builtinSource = "<built-in>"

// LintCmd implements the 'lint' command.
type LintCmd struct {
	TreeFlag `embed:""`

	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	Watch  bool   `short:"w" help:"Re-lint whenever the tree file changes (requires a tree file)"`
}

func (l *LintCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	source := l.source(cfg)

	if !l.Watch {
		return l.lintOnce(g, cfg, source)
	}
	if source == "" {
		return kterrors.ValidationFailed("watch", "--watch needs a tree file; the built-in descriptor never changes")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return l.watch(ctx, g, cfg, source)
}

func (l *LintCmd) watch(ctx context.Context, g *Global, cfg *config.Config, source string) error {
	relint := func(context.Context) error {
		return l.lintOnce(g, cfg, source)
	}
	if err := relint(ctx); err != nil {
		slog.Warn("Lint failed", logfields.Source(source), logfields.Error(err))
	}

	fw, err := watch.New(source, 0, relint)
	if err != nil {
		return kterrors.Wrap(err, kterrors.CategoryRuntime, kterrors.SeverityFatal, "failed to start watcher")
	}
	if err := fw.Run(ctx); err != nil {
		return kterrors.Wrap(err, kterrors.CategoryRuntime, kterrors.SeverityFatal, "watcher stopped")
	}
	return nil
}

// lintOnce loads, lints and reports a single tree.
func (l *LintCmd) lintOnce(g *Global, cfg *config.Config, source string) error {
	tree, err := treeio.Source(source)
	if err != nil {
		return err
	}

	rec, flush := newRecorder(cfg)
	defer flush()
	result := l.lint(tree, cfg, rec)

	name := source
	if name == "" {
		name = builtinSource
	}
	if err := lint.NewFormatter(l.Format).Format(g.Out, result, name); err != nil {
		return kterrors.InternalError("formatting output", err)
	}

	switch {
	case result.HasErrors():
		return kterrors.LintFailed(result.ErrorCount(), result.WarningCount())
	case result.HasWarnings() && cfg.Lint.FailOnWarnings:
		return kterrors.LintWarnings(result.WarningCount())
	}
	return nil
}

func (l *LintCmd) lint(tree doctree.PageNode, cfg *config.Config, rec metrics.Recorder) *lint.Result {
	linter := lint.NewLinter(&lint.Config{
		Quiet:    l.Quiet,
		Format:   l.Format,
		Disabled: cfg.Lint.Disabled,
	})
	result := linter.Lint(tree)

	recordShape(rec, tree)
	for _, issue := range result.Issues {
		rec.IncLintIssue(issue.Rule, issue.Severity.String())
	}
	slog.Debug("Lint completed",
		logfields.Count(len(result.Issues)),
		slog.Int("nodes", result.NodesTotal),
		slog.Int("pages", result.PagesTotal))
	return result
}
