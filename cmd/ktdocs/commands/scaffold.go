package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/scaffold"
)

// ScaffoldCmd implements the 'scaffold' command.
type ScaffoldCmd struct {
	TreeFlag `embed:""`

	Output string `short:"o" help:"Output directory (overrides output.directory)"`
	Clean  bool   `help:"Remove previously scaffolded pages before writing"`
	Check  bool   `help:"Verify the output directory instead of writing to it"`
}

func (s *ScaffoldCmd) Run(g *Global, root *CLI) error {
	cfg, tree, err := root.loadTree(s.TreeFlag)
	if err != nil {
		return err
	}

	outputDir := cfg.Output.Directory
	if s.Output != "" {
		outputDir = s.Output
	}

	rec, flush := newRecorder(cfg)
	defer flush()
	recordShape(rec, tree)

	sc := scaffold.New(scaffold.Options{
		OutputDir:     outputDir,
		Clean:         s.Clean || cfg.Output.Clean,
		Manifest:      cfg.Output.WriteManifest(),
		Source:        s.source(cfg),
		DisabledRules: cfg.Lint.Disabled,
		Recorder:      rec,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if s.Check {
		report, err := sc.Check(ctx, tree)
		if err != nil {
			return err
		}
		for _, p := range report.Problems {
			if _, err := fmt.Fprintf(g.Out, "✗ %s: %s\n", p.RelPath, p.Reason); err != nil {
				return err
			}
		}
		if len(report.Problems) > 0 {
			return kterrors.ScaffoldOutOfDate(outputDir, len(report.Problems))
		}
		_, err = fmt.Fprintf(g.Out, "%d files up to date in %s\n", report.Count(scaffold.ResultFresh), outputDir)
		return err
	}

	report, err := sc.Write(ctx, tree)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.Out, "%d written, %d unchanged in %s\n",
		report.Count(scaffold.ResultWritten), report.Count(scaffold.ResultUnchanged), outputDir)
	return err
}
