package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/lint"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"git.home.luguber.info/inful/ktdocs/internal/metrics"
	"github.com/google/uuid"
)

// Result values recorded per file.
const (
	ResultWritten   = "written"
	ResultUnchanged = "unchanged"
	ResultMissing   = "missing"
	ResultStale     = "stale"
	ResultFresh     = "fresh"
)

// Options configures a Scaffolder.
type Options struct {
	OutputDir string
	// Clean removes the tree's root directory before writing.
	Clean bool
	// Manifest writes manifest.json into OutputDir.
	Manifest bool
	// Source is the tree file being scaffolded, recorded in the manifest.
	Source string
	// DisabledRules lists lint rules skipped when validating the tree.
	DisabledRules []string
	Recorder      metrics.Recorder
	// NewUID generates page uids; defaults to uuid.NewString.
	NewUID func() string
}

// FileResult reports what happened to one planned file.
type FileResult struct {
	RelPath string
	Kind    Kind
	Result  string
}

// Problem is a discrepancy found by Check.
type Problem struct {
	RelPath string
	Reason  string
}

// Report summarises a Write or Check run.
type Report struct {
	Files    []FileResult
	Problems []Problem
	Duration time.Duration
}

// Count returns how many files ended with result.
func (r *Report) Count(result string) int {
	n := 0
	for _, f := range r.Files {
		if f.Result == result {
			n++
		}
	}
	return n
}

// Scaffolder writes and verifies the output tree.
type Scaffolder struct {
	opts Options
}

// New creates a Scaffolder.
func New(opts Options) *Scaffolder {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.NewUID == nil {
		opts.NewUID = uuid.NewString
	}
	return &Scaffolder{opts: opts}
}

// Write lays out every planned file under the output directory. Files whose
// content would not change are left untouched, and uids of existing pages are
// kept. Malformed trees are rejected before anything is written.
func (s *Scaffolder) Write(ctx context.Context, root doctree.PageNode) (*Report, error) {
	start := time.Now()
	if err := s.preflight(root); err != nil {
		return nil, err
	}

	if s.opts.Clean {
		if err := s.clean(root); err != nil {
			return nil, err
		}
	}

	report := &Report{}
	for _, f := range Plan(root) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := s.writeFile(f)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, FileResult{RelPath: f.RelPath, Kind: f.Kind, Result: res})
		s.opts.Recorder.IncScaffoldFile(string(f.Kind), res)
		slog.Debug("Scaffold file", logfields.File(f.RelPath), slog.String("result", res))
	}

	if s.opts.Manifest {
		if err := WriteManifest(filepath.Join(s.opts.OutputDir, ManifestFile), root, s.opts.Source); err != nil {
			return report, err
		}
	}

	report.Duration = time.Since(start)
	s.opts.Recorder.ObserveScaffoldDuration(report.Duration)
	slog.Info("Scaffold completed",
		logfields.Path(s.opts.OutputDir),
		slog.Int("written", report.Count(ResultWritten)),
		slog.Int("unchanged", report.Count(ResultUnchanged)),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

// Check compares the output directory with what Write would produce. It
// reports missing and stale files, pages lacking a heading for one of their
// symbols, and Markdown files under the tree root that no node accounts for.
func (s *Scaffolder) Check(ctx context.Context, root doctree.PageNode) (*Report, error) {
	start := time.Now()
	if err := s.preflight(root); err != nil {
		return nil, err
	}

	report := &Report{}
	planned := make(map[string]struct{})
	for _, f := range Plan(root) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		planned[f.RelPath] = struct{}{}
		res, problems, err := s.checkFile(f)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, FileResult{RelPath: f.RelPath, Kind: f.Kind, Result: res})
		report.Problems = append(report.Problems, problems...)
		s.opts.Recorder.IncScaffoldFile(string(f.Kind), res)
	}

	orphans, err := s.orphans(root, planned)
	if err != nil {
		return report, err
	}
	report.Problems = append(report.Problems, orphans...)
	report.Duration = time.Since(start)
	return report, nil
}

// preflight rejects trees the linter reports errors for, and trees in which
// two nodes map to the same output file.
func (s *Scaffolder) preflight(root doctree.PageNode) error {
	result := lint.NewLinter(&lint.Config{Quiet: true, Disabled: s.opts.DisabledRules}).Lint(root)
	if result.HasErrors() {
		for _, issue := range result.Issues {
			slog.Error(issue.Message, logfields.Path(issue.NodePath), logfields.Rule(issue.Rule))
		}
		return kterrors.LintFailed(result.ErrorCount(), result.WarningCount())
	}

	owners := make(map[string]string)
	for _, f := range Plan(root) {
		if prev, dup := owners[f.RelPath]; dup {
			return kterrors.ValidationFailed("path",
				fmt.Sprintf("%q and %q both map to %s", prev, f.NodePath, f.RelPath))
		}
		owners[f.RelPath] = f.NodePath
	}
	return nil
}

func (s *Scaffolder) target(relPath string) (string, error) {
	local := filepath.FromSlash(relPath)
	if !filepath.IsLocal(local) {
		return "", kterrors.ValidationFailed("path", fmt.Sprintf("%q escapes the output directory", relPath))
	}
	return filepath.Join(s.opts.OutputDir, local), nil
}

func (s *Scaffolder) clean(root doctree.PageNode) error {
	top := strings.Trim(root.Path, "/")
	if top == "" {
		return nil
	}
	dir, err := s.target(top)
	if err != nil {
		return err
	}
	if filepath.Clean(dir) == filepath.Clean(s.opts.OutputDir) {
		return kterrors.ValidationFailed("path",
			fmt.Sprintf("root path %q resolves to the output directory, refusing to clean it", root.Path))
	}
	if err := os.RemoveAll(dir); err != nil {
		return kterrors.WriteFailed(dir, err)
	}
	slog.Info("Cleaned output", logfields.Path(dir))
	return nil
}

func (s *Scaffolder) writeFile(f File) (string, error) {
	path, err := s.target(f.RelPath)
	if err != nil {
		return "", err
	}

	uid := ""
	// #nosec G304 -- path is confined to the output directory
	existing, readErr := os.ReadFile(path)
	if readErr == nil {
		if fm, _, err := parse(existing); err == nil {
			uid = fm.UID
		}
	}
	if uid == "" && f.Kind == KindPage {
		uid = s.opts.NewUID()
	}

	content, _, err := Render(f, uid)
	if err != nil {
		return "", kterrors.InternalError("render scaffold file", err)
	}
	if readErr == nil && bytes.Equal(existing, content) {
		return ResultUnchanged, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", kterrors.WriteFailed(filepath.Dir(path), err)
	}
	// #nosec G306 -- scaffolded pages are public content
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", kterrors.WriteFailed(path, err)
	}
	return ResultWritten, nil
}

func (s *Scaffolder) checkFile(f File) (string, []Problem, error) {
	path, err := s.target(f.RelPath)
	if err != nil {
		return "", nil, err
	}
	// #nosec G304 -- path is confined to the output directory
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ResultMissing, []Problem{{RelPath: f.RelPath, Reason: "file is missing"}}, nil
	}
	if err != nil {
		return "", nil, kterrors.ReadFailed(path, err)
	}

	fm, body, err := parse(existing)
	if err != nil {
		return ResultStale, []Problem{{RelPath: f.RelPath, Reason: err.Error()}}, nil
	}

	_, want, err := Render(f, fm.UID)
	if err != nil {
		return "", nil, kterrors.InternalError("render scaffold file", err)
	}

	var problems []Problem
	if fm.Fingerprint != want.Fingerprint {
		problems = append(problems, Problem{RelPath: f.RelPath, Reason: "fingerprint does not match the tree"})
	}
	if f.Kind == KindPage {
		for _, sym := range missingSymbols(body, f.Symbols) {
			problems = append(problems, Problem{RelPath: f.RelPath, Reason: fmt.Sprintf("no heading for symbol %s", sym)})
		}
		for _, sym := range unknownPlaceholders(body, f.Symbols) {
			problems = append(problems, Problem{RelPath: f.RelPath, Reason: fmt.Sprintf("placeholder for unlisted symbol %s", sym)})
		}
	}
	if len(problems) > 0 {
		return ResultStale, problems, nil
	}
	return ResultFresh, nil, nil
}

func (s *Scaffolder) orphans(root doctree.PageNode, planned map[string]struct{}) ([]Problem, error) {
	top := strings.Trim(root.Path, "/")
	if top == "" {
		return nil, nil
	}
	dir, err := s.target(top)
	if err != nil {
		return nil, err
	}
	var problems []Problem
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(s.opts.OutputDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if _, ok := planned[rel]; !ok {
			problems = append(problems, Problem{RelPath: rel, Reason: "no tree node produces this file"})
		}
		return nil
	})
	if err != nil {
		return nil, kterrors.ReadFailed(dir, err)
	}
	return problems, nil
}
