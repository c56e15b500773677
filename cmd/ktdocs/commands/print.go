package commands

import (
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/treeio"
)

// PrintCmd implements the 'print' command.
type PrintCmd struct {
	TreeFlag `embed:""`

	Format string `short:"f" default:"outline" help:"Output format (outline, json or yaml)" enum:"outline,json,yaml"`
	Node   string `arg:"" optional:"" help:"Accumulated path of the sub-tree to print (e.g. keras-tuner/tuners/)"`
}

func (p *PrintCmd) Run(g *Global, root *CLI) error {
	_, tree, err := root.loadTree(p.TreeFlag)
	if err != nil {
		return err
	}

	if p.Node != "" {
		sub, ok := doctree.Find(tree, p.Node)
		if !ok {
			return kterrors.ValidationFailed("node", fmt.Sprintf("no node at path %q", p.Node))
		}
		tree = sub
	}

	switch p.Format {
	case "json":
		return treeio.Encode(g.Out, tree, treeio.FormatJSON)
	case "yaml":
		return treeio.Encode(g.Out, tree, treeio.FormatYAML)
	default:
		return writeOutline(g.Out, tree)
	}
}

// writeOutline renders the tree as an indented list of titles and paths.
func writeOutline(w io.Writer, tree doctree.PageNode) error {
	return doctree.Walk(&tree, func(node *doctree.PageNode, depth int, fullPath string) error {
		indent := strings.Repeat("  ", depth)
		var err error
		if node.IsGroup() {
			_, err = fmt.Fprintf(w, "%s%s  [%s]\n", indent, node.Title, fullPath)
		} else {
			_, err = fmt.Fprintf(w, "%s%s  [%s] (%d symbol%s)\n", indent, node.Title, fullPath,
				len(node.Generate), plural(len(node.Generate)))
		}
		return err
	})
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
