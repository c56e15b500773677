package scaffold

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/ktdocs/internal/frontmatter"
	"github.com/inful/mdfp"
)

// GenerateMarker prefixes the placeholder the external generator replaces
// with a symbol's rendered reference.
const GenerateMarker = "ktdocs:generate"

// Frontmatter is the metadata block written at the top of every file.
// Field order is fixed so that serialization is deterministic.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Type        Kind     `yaml:"type"`
	Toc         bool     `yaml:"toc,omitempty"`
	Symbols     []string `yaml:"symbols,omitempty"`
	UID         string   `yaml:"uid,omitempty"`
	Fingerprint string   `yaml:"fingerprint,omitempty"`
}

// Render produces the complete file content for f. uid is carried into the
// frontmatter but excluded from the fingerprint, like the fingerprint itself.
func Render(f File, uid string) ([]byte, Frontmatter, error) {
	fm := Frontmatter{
		Title:   f.Title,
		Type:    f.Kind,
		Toc:     f.Kind == KindIndex,
		Symbols: f.Symbols,
	}
	body := renderBody(f)

	fp, err := fingerprint(fm, body)
	if err != nil {
		return nil, Frontmatter{}, err
	}
	fm.UID = uid
	fm.Fingerprint = fp

	raw, err := frontmatter.Marshal(fm)
	if err != nil {
		return nil, Frontmatter{}, err
	}
	return frontmatter.Join(raw, body), fm, nil
}

func renderBody(f File) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", f.Title)

	switch f.Kind {
	case KindIndex:
		b.WriteString("\n")
		for _, e := range f.Entries {
			fmt.Fprintf(&b, "- [%s](%s)\n", e.Title, e.Target)
		}
	case KindPage:
		for _, sym := range f.Symbols {
			fmt.Fprintf(&b, "\n### `%s`\n\n<!-- %s %s -->\n", sym, GenerateMarker, sym)
		}
	}
	return []byte(b.String())
}

// fingerprint hashes the frontmatter without its volatile fields plus body.
func fingerprint(fm Frontmatter, body []byte) (string, error) {
	fm.UID = ""
	fm.Fingerprint = ""
	raw, err := frontmatter.Marshal(fm)
	if err != nil {
		return "", err
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(raw), "\n"), string(body)), nil
}

// parse reads a previously written file back into its frontmatter and body.
func parse(content []byte) (Frontmatter, []byte, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(content, &fm)
	if err != nil {
		return Frontmatter{}, nil, err
	}
	return fm, body, nil
}
