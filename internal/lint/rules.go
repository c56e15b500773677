package lint

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	"git.home.luguber.info/inful/ktdocs/internal/symbol"
	"golang.org/x/text/unicode/norm"
)

// Rule defines a check applied to every node of a tree.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check validates a node and returns any issues found.
	Check(node *doctree.PageNode, fullPath string) []Issue
}

// DefaultRules returns the rules applied by NewLinter.
func DefaultRules() []Rule {
	return []Rule{
		&PathRequiredRule{},
		&PathSegmentRule{},
		&TitleRequiredRule{},
		&TitleNormalizedRule{},
		&LeafGenerateRule{},
		&LeafTocRule{},
		&GroupTocRule{},
		&GroupGenerateRule{},
		&SiblingPathRule{},
		&SymbolFormRule{},
		&SymbolDuplicateRule{},
	}
}

// PathRequiredRule flags nodes without a path segment.
type PathRequiredRule struct{}

func (r *PathRequiredRule) Name() string { return "path-required" }

func (r *PathRequiredRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if strings.TrimSpace(node.Path) != "" {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("Node %q has an empty path", node.Title),
		Fix:      "Give the node a path segment unique among its siblings",
	}}
}

// PathSegmentRule rejects relative and empty segments inside a path. Such a
// node would be scaffolded outside its parent, or onto its parent's directory.
type PathSegmentRule struct{}

func (r *PathSegmentRule) Name() string { return "path-segment-valid" }

func (r *PathSegmentRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if strings.TrimSpace(node.Path) == "" {
		return nil
	}
	trimmed := strings.Trim(node.Path, "/")
	if trimmed == "" {
		return []Issue{r.issue(fullPath, node.Path, "has no segment")}
	}
	for _, seg := range strings.Split(trimmed, "/") {
		switch seg {
		case "", ".", "..":
			return []Issue{r.issue(fullPath, node.Path, fmt.Sprintf("contains segment %q", seg))}
		}
	}
	return nil
}

func (r *PathSegmentRule) issue(fullPath, path, reason string) Issue {
	return Issue{
		NodePath: fullPath,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("Path %q %s", path, reason),
		Fix:      "Use plain names separated by single slashes",
	}
}

// TitleRequiredRule flags nodes without a title.
type TitleRequiredRule struct{}

func (r *TitleRequiredRule) Name() string { return "title-required" }

func (r *TitleRequiredRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if strings.TrimSpace(node.Title) != "" {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityWarning,
		Rule:     r.Name(),
		Message:  "Node has no title",
		Fix:      "Add a human-readable title",
	}}
}

// TitleNormalizedRule warns about titles that are not in Unicode NFC, which
// render identically but produce different anchors and fingerprints.
type TitleNormalizedRule struct{}

func (r *TitleNormalizedRule) Name() string { return "title-normalized" }

func (r *TitleNormalizedRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if norm.NFC.IsNormalString(node.Title) {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityWarning,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("Title %q is not NFC-normalized", node.Title),
		Fix:      fmt.Sprintf("Use %q", norm.NFC.String(node.Title)),
	}}
}

// LeafGenerateRule requires every leaf to list at least one symbol.
type LeafGenerateRule struct{}

func (r *LeafGenerateRule) Name() string { return "leaf-generate-required" }

func (r *LeafGenerateRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if !node.IsLeaf() || len(node.Generate) > 0 {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  "Page lists no symbols to document",
		Fix:      "Add at least one entry to generate, or remove the page",
	}}
}

// LeafTocRule rejects toc on pages, whatever its value; toc only makes sense
// on groups.
type LeafTocRule struct{}

func (r *LeafTocRule) Name() string { return "leaf-toc-forbidden" }

func (r *LeafTocRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if !node.IsLeaf() || !node.HasToc() {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("Page sets toc: %t but has no children", *node.Toc),
		Fix:      "Remove toc from the page",
	}}
}

// GroupTocRule requires toc on every node with children.
type GroupTocRule struct{}

func (r *GroupTocRule) Name() string { return "group-toc-required" }

func (r *GroupTocRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if !node.IsGroup() || node.TocEnabled() {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  "Group does not set toc",
		Fix:      "Set toc: true on the group",
	}}
}

// GroupGenerateRule rejects nodes that both group children and list symbols.
type GroupGenerateRule struct{}

func (r *GroupGenerateRule) Name() string { return "group-generate-forbidden" }

func (r *GroupGenerateRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	if !node.IsGroup() || node.Generate == nil {
		return nil
	}
	return []Issue{{
		NodePath: fullPath,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("Group lists %d symbol(s) alongside its children", len(node.Generate)),
		Fix:      "Move the symbols into a child page",
	}}
}

// SiblingPathRule requires path segments to be unique among siblings. Leading
// and trailing slashes are ignored, since "random" and "random/" land on the
// same output files.
type SiblingPathRule struct{}

func (r *SiblingPathRule) Name() string { return "sibling-path-unique" }

func (r *SiblingPathRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(node.Children))
	for i, child := range node.Children {
		key := strings.Trim(child.Path, "/")
		if key == "" {
			continue
		}
		if first, dup := seen[key]; dup {
			issues = append(issues, Issue{
				NodePath: doctree.JoinPath(fullPath, child.Path),
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("Children %d and %d share path %q", first, i, child.Path),
				Fix:      "Rename one of the siblings",
			})
			continue
		}
		seen[key] = i
	}
	return issues
}

// SymbolFormRule checks each generate entry is a well-formed dotted identifier.
type SymbolFormRule struct{}

func (r *SymbolFormRule) Name() string { return "symbol-well-formed" }

func (r *SymbolFormRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	var issues []Issue
	for _, id := range node.Generate {
		if _, err := symbol.Parse(id); err != nil {
			issues = append(issues, Issue{
				NodePath: fullPath,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  err.Error(),
				Fix:      "Use a fully-qualified dotted name such as package.Class.method",
			})
		}
	}
	return issues
}

// SymbolDuplicateRule warns when a page lists the same symbol twice.
type SymbolDuplicateRule struct{}

func (r *SymbolDuplicateRule) Name() string { return "symbol-duplicate" }

func (r *SymbolDuplicateRule) Check(node *doctree.PageNode, fullPath string) []Issue {
	var issues []Issue
	seen := make(map[string]struct{}, len(node.Generate))
	for _, id := range node.Generate {
		if _, dup := seen[id]; dup {
			issues = append(issues, Issue{
				NodePath: fullPath,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("Symbol %q is listed more than once", id),
				Fix:      "Remove the repeated entry",
			})
			continue
		}
		seen[id] = struct{}{}
	}
	return issues
}
