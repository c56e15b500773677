// Package treeio reads and writes documentation trees as JSON or YAML.
package treeio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", kterrors.UnsupportedFormat(path, ext)
	}
}

// Encode writes root to w. JSON output is indented with two spaces and ends
// with a newline, matching the YAML encoder's layout.
func Encode(w io.Writer, root doctree.PageNode, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(root); err != nil {
			return kterrors.EncodeFailed(string(format), err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			_ = enc.Close()
			return kterrors.EncodeFailed(string(format), err)
		}
		if err := enc.Close(); err != nil {
			return kterrors.EncodeFailed(string(format), err)
		}
		return nil
	default:
		return kterrors.EncodeFailed(string(format), fmt.Errorf("unknown format %q", format))
	}
}

// Marshal is Encode into a byte slice.
func Marshal(root doctree.PageNode, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a single tree from r. Unknown or differently cased fields and
// anything after the tree are rejected, so that a misspelled key (e.g.
// "children:" vs "childs:") never silently drops pages.
func Decode(r io.Reader, format Format) (doctree.PageNode, error) {
	var root doctree.PageNode
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return doctree.PageNode{}, err
		}
		if _, err := dec.Token(); err != io.EOF {
			return doctree.PageNode{}, errTrailingData
		}
		if err := checkKeys(raw, "$"); err != nil {
			return doctree.PageNode{}, err
		}
		strict := json.NewDecoder(bytes.NewReader(raw))
		strict.DisallowUnknownFields()
		if err := strict.Decode(&root); err != nil {
			return doctree.PageNode{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil {
			if err == io.EOF {
				return doctree.PageNode{}, fmt.Errorf("empty document")
			}
			return doctree.PageNode{}, err
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); err != io.EOF {
			return doctree.PageNode{}, errTrailingData
		}
	default:
		return doctree.PageNode{}, fmt.Errorf("unknown format %q", format)
	}
	return root, nil
}

var errTrailingData = errors.New("unexpected data after the tree")

// nodeKeys are the only keys a node may carry. JSON field matching in
// encoding/json is case-insensitive, so keys are checked before decoding.
var nodeKeys = map[string]bool{
	"path":     true,
	"title":    true,
	"toc":      true,
	"children": true,
	"generate": true,
}

func checkKeys(raw json.RawMessage, where string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	for key := range fields {
		if !nodeKeys[key] {
			return fmt.Errorf("%s: unknown field %q", where, key)
		}
	}
	children, ok := fields["children"]
	if !ok || string(children) == "null" {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(children, &list); err != nil {
		return err
	}
	for i, child := range list {
		if err := checkKeys(child, fmt.Sprintf("%s.children[%d]", where, i)); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte, format Format) (doctree.PageNode, error) {
	return Decode(bytes.NewReader(data), format)
}

// Load reads a tree from path, choosing the codec by extension.
func Load(path string) (doctree.PageNode, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return doctree.PageNode{}, err
	}
	// #nosec G304 -- path is user-provided tree file
	data, err := os.ReadFile(path)
	if err != nil {
		return doctree.PageNode{}, kterrors.ReadFailed(path, err)
	}
	root, err := Unmarshal(data, format)
	if err != nil {
		return doctree.PageNode{}, kterrors.DecodeFailed(path, err)
	}
	slog.Debug("Loaded documentation tree", logfields.Path(path), logfields.Format(string(format)))
	return root, nil
}

// Save writes root to path, choosing the codec by extension.
func Save(path string, root doctree.PageNode) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(root, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return kterrors.WriteFailed(dir, err)
		}
	}
	// #nosec G306 -- tree files are public content
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return kterrors.WriteFailed(path, err)
	}
	slog.Info("Wrote documentation tree", logfields.Path(path), logfields.Format(string(format)))
	return nil
}

// Source resolves the tree a command works on: the built-in descriptor when
// path is empty, otherwise the tree file at path.
func Source(path string) (doctree.PageNode, error) {
	if path == "" {
		return doctree.Master(), nil
	}
	return Load(path)
}
