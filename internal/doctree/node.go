// Package doctree holds the table-of-contents descriptor for the Keras Tuner API
// reference and the helpers consumers use to traverse it.
package doctree

import "slices"

// PageNode is one entry in the documentation tree. A node either groups children
// (and carries Toc) or lists the symbols documented on its page.
//
// Toc is a pointer so that a key present in a tree file survives decoding even
// when its value is false.
type PageNode struct {
	Path     string     `json:"path" yaml:"path"`
	Title    string     `json:"title" yaml:"title"`
	Toc      *bool      `json:"toc,omitempty" yaml:"toc,omitempty"`
	Children []PageNode `json:"children,omitempty" yaml:"children,omitempty"`
	Generate []string   `json:"generate,omitempty" yaml:"generate,omitempty"`
}

// Bool returns a pointer to v, for setting Toc in literals.
func Bool(v bool) *bool {
	return &v
}

// HasToc reports whether the node declares toc at all.
func (n PageNode) HasToc() bool {
	return n.Toc != nil
}

// TocEnabled reports whether the node declares toc: true.
func (n PageNode) TocEnabled() bool {
	return n.Toc != nil && *n.Toc
}

// IsLeaf reports whether the node produces a page (it has no children).
func (n PageNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsGroup reports whether the node groups child pages.
func (n PageNode) IsGroup() bool {
	return len(n.Children) > 0
}

// Clone returns a deep copy of the node. Empty slices stay nil so that a clone
// serializes exactly like its source.
func (n PageNode) Clone() PageNode {
	out := PageNode{
		Path:     n.Path,
		Title:    n.Title,
		Generate: slices.Clone(n.Generate),
	}
	if n.Toc != nil {
		out.Toc = Bool(*n.Toc)
	}
	if n.Children != nil {
		out.Children = make([]PageNode, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Equal reports order-preserving structural equality. A nil and an empty
// slice compare equal since neither survives serialization.
func (n PageNode) Equal(other PageNode) bool {
	if n.Path != other.Path || n.Title != other.Title || !equalFlag(n.Toc, other.Toc) {
		return false
	}
	if !slices.Equal(n.Generate, other.Generate) {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

func equalFlag(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Page is a leaf of the tree resolved to its output location.
type Page struct {
	// Path is the concatenation of every ancestor path segment and the leaf's own.
	Path    string
	Title   string
	Symbols []string
	Depth   int
}

// SymbolRef ties a symbol identifier to the page documenting it.
type SymbolRef struct {
	Symbol   string
	PagePath string
	Position int
}
