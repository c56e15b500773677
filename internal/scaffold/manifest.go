package scaffold

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/git"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"git.home.luguber.info/inful/ktdocs/internal/treeio"
	"git.home.luguber.info/inful/ktdocs/internal/version"
)

// ManifestFile is written into the output directory after a scaffold run.
const ManifestFile = "manifest.json"

// Manifest records which pages a tree produced and the tree they came from.
type Manifest struct {
	Version  string         `json:"version"`
	TreeHash string         `json:"tree_hash"`
	Source   string         `json:"source,omitempty"`
	Revision *git.Revision  `json:"revision,omitempty"`
	Root     string         `json:"root"`
	Groups   int            `json:"groups"`
	Symbols  int            `json:"symbols"`
	Pages    []ManifestPage `json:"pages"`
}

// ManifestPage is one leaf of the tree.
type ManifestPage struct {
	Path    string   `json:"path"`
	File    string   `json:"file"`
	Title   string   `json:"title"`
	Symbols []string `json:"symbols"`
}

// TreeHash is the SHA-256 of the tree's canonical JSON encoding.
func TreeHash(root doctree.PageNode) (string, error) {
	data, err := treeio.Marshal(root, treeio.FormatJSON)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// BuildManifest describes root. source is the tree file root was loaded from,
// empty for the built-in descriptor; its git revision is recorded when the
// file is tracked in a repository.
func BuildManifest(root doctree.PageNode, source string) (*Manifest, error) {
	hash, err := TreeHash(root)
	if err != nil {
		return nil, err
	}
	stats := doctree.Summarize(root)
	m := &Manifest{
		Version:  version.Version,
		TreeHash: hash,
		Source:   source,
		Root:     root.Path,
		Groups:   stats.Groups,
		Symbols:  stats.Symbols,
		Pages:    make([]ManifestPage, 0, stats.Pages),
	}
	if source != "" {
		rev, err := git.RevisionAt(source)
		switch {
		case err == nil:
			m.Revision = &rev
		case errors.Is(err, git.ErrNotRepository):
		default:
			slog.Warn("Could not resolve tree revision", logfields.Source(source), logfields.Error(err))
		}
	}
	for _, p := range doctree.Pages(root) {
		m.Pages = append(m.Pages, ManifestPage{
			Path:    p.Path,
			File:    pageFile(p.Path),
			Title:   p.Title,
			Symbols: p.Symbols,
		})
	}
	return m, nil
}

// WriteManifest writes the manifest for root to path.
func WriteManifest(path string, root doctree.PageNode, source string) error {
	m, err := BuildManifest(root, source)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return kterrors.EncodeFailed("json", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return kterrors.WriteFailed(filepath.Dir(path), err)
	}
	// #nosec G306 -- manifest is public metadata
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return kterrors.WriteFailed(path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	// #nosec G304 -- path is user-provided output directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kterrors.ReadFailed(path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, kterrors.DecodeFailed(path, err)
	}
	return &m, nil
}
