package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/ktdocs/internal/config"
	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"git.home.luguber.info/inful/ktdocs/internal/metrics"
	"git.home.luguber.info/inful/ktdocs/internal/treeio"
	"github.com/alecthomas/kong"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"ktdocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Print    PrintCmd    `cmd:"" help:"Print the documentation tree (json, yaml or outline)"`
	Pages    PagesCmd    `cmd:"" help:"List every page with its accumulated path"`
	Symbols  SymbolsCmd  `cmd:"" help:"List every documented symbol and the page it appears on"`
	Lint     LintCmd     `cmd:"" help:"Validate the structure of the documentation tree"`
	Scaffold ScaffoldCmd `cmd:"" help:"Write page skeletons for the API reference generator"`
	Export   ExportCmd   `cmd:"" help:"Write the documentation tree to a JSON or YAML file"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`

	logOut io.Writer
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	out := c.logOut
	if out == nil {
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// TreeFlag selects a tree file, overriding tree.source from the configuration.
type TreeFlag struct {
	Tree string `short:"t" help:"Tree file (.json, .yaml); defaults to tree.source or the built-in descriptor" type:"path"`
}

// loadConfig loads the configuration named by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(c.Config)
	if err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded", logfields.Path(c.Config))
	return cfg, nil
}

// source returns the tree file to use; empty means the built-in descriptor.
func (t TreeFlag) source(cfg *config.Config) string {
	if t.Tree != "" {
		return t.Tree
	}
	return cfg.Tree.Source
}

// loadTree resolves the configuration and the tree it points at.
func (c *CLI) loadTree(t TreeFlag) (*config.Config, doctree.PageNode, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, doctree.PageNode{}, err
	}
	root, err := treeio.Source(t.source(cfg))
	if err != nil {
		return nil, doctree.PageNode{}, err
	}
	return cfg, root, nil
}

// newRecorder returns a Prometheus recorder when a textfile is configured and
// a no-op recorder otherwise. flush writes the textfile, if any.
func newRecorder(cfg *config.Config) (rec metrics.Recorder, flush func()) {
	if cfg.Metrics.Textfile == "" {
		return metrics.NoopRecorder{}, func() {}
	}
	pr := metrics.NewPrometheusRecorder(nil)
	return pr, func() {
		if err := pr.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
			return
		}
		slog.Debug("Metrics written", logfields.Path(cfg.Metrics.Textfile))
	}
}

func recordShape(rec metrics.Recorder, root doctree.PageNode) {
	stats := doctree.Summarize(root)
	rec.SetTreeShape(stats.Groups, stats.Pages, stats.Symbols)
}
