package commands

import (
	"fmt"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
)

// PagesCmd implements the 'pages' command.
type PagesCmd struct {
	TreeFlag `embed:""`
}

func (p *PagesCmd) Run(g *Global, root *CLI) error {
	_, tree, err := root.loadTree(p.TreeFlag)
	if err != nil {
		return err
	}
	for _, page := range doctree.Pages(tree) {
		if _, err := fmt.Fprintf(g.Out, "%s\t%s\t%d\n", page.Path, page.Title, len(page.Symbols)); err != nil {
			return err
		}
	}
	return nil
}
