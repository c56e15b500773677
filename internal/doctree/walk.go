package doctree

import (
	"errors"
	"strings"
)

// SkipChildren can be returned from a WalkFunc to skip the node's children.
var SkipChildren = errors.New("skip children")

// StopWalk can be returned from a WalkFunc to end the traversal without error.
var StopWalk = errors.New("stop walk")

// WalkFunc is called for every node in depth-first order. fullPath is the
// concatenation of the ancestors' path segments and the node's own.
type WalkFunc func(node *PageNode, depth int, fullPath string) error

// Walk traverses root depth-first, visiting children in their declared order.
func Walk(root *PageNode, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	err := walk(root, 0, "", fn)
	if errors.Is(err, StopWalk) {
		return nil
	}
	return err
}

func walk(node *PageNode, depth int, prefix string, fn WalkFunc) error {
	fullPath := JoinPath(prefix, node.Path)
	if err := fn(node, depth, fullPath); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for i := range node.Children {
		if err := walk(&node.Children[i], depth+1, fullPath, fn); err != nil {
			return err
		}
	}
	return nil
}

// JoinPath appends a path segment to an accumulated prefix. Segments are
// concatenated as declared; a separator is only inserted when neither side
// provides one.
func JoinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	if strings.HasSuffix(prefix, "/") || strings.HasPrefix(segment, "/") {
		return prefix + segment
	}
	return prefix + "/" + segment
}

// Pages returns every leaf of root in rendering order.
func Pages(root PageNode) []Page {
	var pages []Page
	_ = Walk(&root, func(node *PageNode, depth int, fullPath string) error {
		if node.IsLeaf() {
			pages = append(pages, Page{
				Path:    fullPath,
				Title:   node.Title,
				Symbols: append([]string(nil), node.Generate...),
				Depth:   depth,
			})
		}
		return nil
	})
	return pages
}

// Symbols returns every generate entry of root in rendering order.
func Symbols(root PageNode) []SymbolRef {
	var refs []SymbolRef
	for _, page := range Pages(root) {
		for i, sym := range page.Symbols {
			refs = append(refs, SymbolRef{Symbol: sym, PagePath: page.Path, Position: i})
		}
	}
	return refs
}

// Find returns the node whose accumulated path equals fullPath. Trailing
// slashes are ignored on both sides.
func Find(root PageNode, fullPath string) (PageNode, bool) {
	want := strings.TrimSuffix(fullPath, "/")
	var found *PageNode
	_ = Walk(&root, func(node *PageNode, _ int, p string) error {
		if strings.TrimSuffix(p, "/") == want {
			found = node
			return StopWalk
		}
		return nil
	})
	if found == nil {
		return PageNode{}, false
	}
	return found.Clone(), true
}

// Stats summarises the shape of a tree.
type Stats struct {
	Groups   int
	Pages    int
	Symbols  int
	MaxDepth int
}

// Summarize counts groups, pages and symbols in root.
func Summarize(root PageNode) Stats {
	var s Stats
	_ = Walk(&root, func(node *PageNode, depth int, _ string) error {
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if node.IsGroup() {
			s.Groups++
			return nil
		}
		s.Pages++
		s.Symbols += len(node.Generate)
		return nil
	})
	return s
}
