package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\nkey: value\n---\n\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_EmptyFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\ntitle: x\r\n---\r\n\r\nbody\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: x\n"), fm)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestJoinThenParse(t *testing.T) {
	type meta struct {
		Title   string   `yaml:"title"`
		Symbols []string `yaml:"symbols"`
	}
	raw, err := Marshal(meta{Title: "Tuners", Symbols: []string{"kerastuner.Tuner"}})
	require.NoError(t, err)
	require.Equal(t, "title: Tuners\nsymbols:\n  - kerastuner.Tuner\n", string(raw))

	doc := Join(raw, []byte("# Tuners\n"))
	require.Equal(t, "---\ntitle: Tuners\nsymbols:\n  - kerastuner.Tuner\n---\n\n# Tuners\n", string(doc))

	var got meta
	body, err := Parse(doc, &got)
	require.NoError(t, err)
	require.Equal(t, meta{Title: "Tuners", Symbols: []string{"kerastuner.Tuner"}}, got)
	require.Equal(t, "# Tuners\n", string(body))
}

func TestParse_InvalidYAML(t *testing.T) {
	var v map[string]any
	_, err := Parse([]byte("---\nkey: [unclosed\n---\nbody\n"), &v)
	require.Error(t, err)
}
