// Package scaffold lays out the output tree an external API documentation
// generator fills in: one stub page per leaf and one table-of-contents index per
// toc group, each carrying the metadata the generator needs.
package scaffold

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
)

// IndexFile is the file name of a group's table-of-contents page.
const IndexFile = "_index.md"

// Kind distinguishes symbol pages from table-of-contents indexes.
type Kind string

const (
	KindPage  Kind = "page"
	KindIndex Kind = "index"
)

// Entry is a link from an index to one of its children.
type Entry struct {
	Title  string
	Target string // relative to the index's directory
}

// File is one planned output file.
type File struct {
	Kind Kind
	// RelPath is slash-separated and relative to the output directory.
	RelPath string
	// NodePath is the accumulated tree path the file was derived from.
	NodePath string
	Title    string
	Symbols  []string
	Entries  []Entry
}

// Plan lists the files root expands to, in traversal order.
func Plan(root doctree.PageNode) []File {
	var files []File
	_ = doctree.Walk(&root, func(node *doctree.PageNode, _ int, fullPath string) error {
		if node.IsLeaf() {
			files = append(files, File{
				Kind:     KindPage,
				RelPath:  pageFile(fullPath),
				NodePath: fullPath,
				Title:    node.Title,
				Symbols:  append([]string(nil), node.Generate...),
			})
			return nil
		}
		if !node.TocEnabled() {
			return nil
		}
		f := File{
			Kind:     KindIndex,
			RelPath:  indexFile(fullPath),
			NodePath: fullPath,
			Title:    node.Title,
		}
		for _, child := range node.Children {
			f.Entries = append(f.Entries, Entry{Title: child.Title, Target: childTarget(child)})
		}
		files = append(files, f)
		return nil
	})
	return files
}

func pageFile(fullPath string) string {
	return strings.TrimSuffix(fullPath, "/") + ".md"
}

func indexFile(fullPath string) string {
	return path.Join(strings.TrimSuffix(fullPath, "/"), IndexFile)
}

func childTarget(child doctree.PageNode) string {
	seg := strings.Trim(child.Path, "/")
	if child.IsGroup() {
		return path.Join(seg, IndexFile)
	}
	return seg + ".md"
}
