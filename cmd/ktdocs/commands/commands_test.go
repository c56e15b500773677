package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	"git.home.luguber.info/inful/ktdocs/internal/treeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI inside a fresh working directory.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestPrint_Outline(t *testing.T) {
	inTempDir(t)
	code, out, _ := run(t, "print")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "Keras Tuner  [keras-tuner/]", lines[0])
	assert.Equal(t, "  HyperParameters  [keras-tuner/hyperparameters] (8 symbols)", lines[1])
	assert.Equal(t, "  Tuners  [keras-tuner/tuners/]", lines[2])
	assert.Equal(t, "    Sklearn  [keras-tuner/tuners/sklearn] (1 symbol)", lines[7])
}

func TestPrint_SubtreeJSON(t *testing.T) {
	inTempDir(t)
	code, out, _ := run(t, "print", "--format", "json", "keras-tuner/hypermodels")
	require.Equal(t, 0, code)

	got, err := treeio.Unmarshal([]byte(out), treeio.FormatJSON)
	require.NoError(t, err)
	assert.True(t, got.Equal(doctree.HyperModels()))
}

func TestPrint_UnknownNode(t *testing.T) {
	inTempDir(t)
	code, _, stderr := run(t, "print", "keras-tuner/metrics/")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "validation failed")
}

func TestPages(t *testing.T) {
	inTempDir(t)
	code, out, _ := run(t, "pages")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "keras-tuner/hyperparameters\tHyperParameters\t8", lines[0])
	assert.Equal(t, "keras-tuner/hypermodels/hyper_xception\tHyperXception\t1", lines[12])
}

func TestSymbols(t *testing.T) {
	inTempDir(t)

	code, out, _ := run(t, "symbols")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 39)

	code, out, _ = run(t, "symbols", "--kind", "class")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 13)
	assert.Contains(t, lines, "kerastuner.Tuner\tclass\tkeras-tuner/tuners/base_tuner#kerastuner.tuner")
	assert.Contains(t, lines, "kerastuner.tuners.Sklearn\tclass\tkeras-tuner/tuners/sklearn#kerastuner.tuners.sklearn")

	code, _, _ = run(t, "symbols", "--kind", "function")
	assert.Equal(t, 2, code)
}

func TestSymbols_ModuleKind(t *testing.T) {
	dir := inTempDir(t)
	tree := `{"path":"kt/","title":"KT","toc":true,"children":[` +
		`{"path":"engine","title":"Engine","generate":["kerastuner.engine.load","kerastuner.Tuner"]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree.json"), []byte(tree), 0o600))

	code, out, _ := run(t, "symbols", "--tree", "tree.json", "--kind", "module")
	require.Equal(t, 0, code)
	assert.Equal(t, "kerastuner.engine.load\tmodule\tkt/engine#kerastuner.engine.load\n", out)
}

func TestLint_BuiltinTree(t *testing.T) {
	inTempDir(t)
	code, out, _ := run(t, "lint")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Linting documentation tree: <built-in>")
	assert.Contains(t, out, "17 nodes checked (13 pages)")
	assert.Contains(t, out, "Tree passes linting.")
}

func TestLint_MalformedTreeFile(t *testing.T) {
	dir := inTempDir(t)
	tree := doctree.Master()
	tree.Children[2].Toc = doctree.Bool(false)
	tree.Children[3].Children[0].Generate = []string{"kerastuner..HyperModel"}
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, treeio.Save(path, tree))

	code, out, _ := run(t, "lint", "--tree", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "[group-toc-required]")
	assert.Contains(t, out, "[symbol-well-formed]")
	assert.Contains(t, out, "Tree is malformed and cannot be used for generation.")
}

func TestLint_FailOnWarnings(t *testing.T) {
	dir := inTempDir(t)
	tree := doctree.Master()
	tree.Children[0].Title = ""
	require.NoError(t, treeio.Save(filepath.Join(dir, "tree.json"), tree))
	require.NoError(t, os.WriteFile("ktdocs.yaml", []byte("tree:\n  source: tree.json\nlint:\n  fail_on_warnings: true\n"), 0o600))

	code, out, _ := run(t, "lint", "--format", "json")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, `"warning_count": 1`)

	// disabling the rule clears the warning
	require.NoError(t, os.WriteFile("ktdocs.yaml", []byte("tree:\n  source: tree.json\nlint:\n  fail_on_warnings: true\n  disabled: [title-required]\n"), 0o600))
	code, _, _ = run(t, "lint")
	assert.Equal(t, 0, code)
}

func TestLint_WatchNeedsTreeFile(t *testing.T) {
	inTempDir(t)
	code, _, stderr := run(t, "lint", "--watch")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "validation failed")
}

func TestLint_WritesMetricsTextfile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile("ktdocs.yaml", []byte("metrics:\n  textfile: ${METRICS_DIR}/ktdocs.prom\n"), 0o600))
	t.Setenv("METRICS_DIR", dir)

	code, _, _ := run(t, "lint")
	require.Equal(t, 0, code)

	// #nosec G304 -- test output
	data, err := os.ReadFile(filepath.Join(dir, "ktdocs.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `ktdocs_tree_nodes{kind="page"} 13`)
	assert.Contains(t, string(data), `ktdocs_tree_nodes{kind="symbol"} 39`)
}

func TestExport(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "out", "tree.yml")

	code, _, _ := run(t, "export", path)
	require.Equal(t, 0, code)

	loaded, err := treeio.Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(doctree.Master()))

	code, _, _ = run(t, "export", filepath.Join(dir, "tree.toml"))
	assert.Equal(t, 2, code)
}

func TestScaffold_WriteThenCheck(t *testing.T) {
	dir := inTempDir(t)
	out := filepath.Join(dir, "site")

	code, stdout, _ := run(t, "scaffold", "--output", out)
	require.Equal(t, 0, code)
	assert.Equal(t, "17 written, 0 unchanged in "+out+"\n", stdout)
	assert.FileExists(t, filepath.Join(out, "manifest.json"))

	code, stdout, _ = run(t, "scaffold", "--output", out, "--check")
	require.Equal(t, 0, code)
	assert.Equal(t, "17 files up to date in "+out+"\n", stdout)

	require.NoError(t, os.Remove(filepath.Join(out, "keras-tuner", "tuners", "hyperband.md")))
	code, stdout, _ = run(t, "scaffold", "--output", out, "--check")
	assert.Equal(t, 2, code)
	assert.Contains(t, stdout, "✗ keras-tuner/tuners/hyperband.md: file is missing")
}

func TestScaffold_UsesConfiguredDirectory(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile("ktdocs.yaml", []byte("output:\n  directory: generated\n  manifest: false\n"), 0o600))

	code, _, _ := run(t, "scaffold")
	require.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "generated", "keras-tuner", "_index.md"))
	assert.NoFileExists(t, filepath.Join(dir, "generated", "manifest.json"))
}

func TestInit(t *testing.T) {
	dir := inTempDir(t)

	code, out, _ := run(t, "init")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "initialized successfully")
	assert.FileExists(t, filepath.Join(dir, "ktdocs.yaml"))

	code, _, _ = run(t, "init")
	assert.Equal(t, 7, code)

	code, _, _ = run(t, "init", "--force")
	assert.Equal(t, 0, code)
}

func TestMissingExplicitConfig(t *testing.T) {
	inTempDir(t)
	code, _, stderr := run(t, "--config", "nope.yaml", "pages")
	assert.Equal(t, 7, code)
	assert.Contains(t, stderr, "configuration file not found")
}

func TestUnknownFlag(t *testing.T) {
	inTempDir(t)
	code, _, stderr := run(t, "pages", "--bogus")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "ktdocs: error:")
}
