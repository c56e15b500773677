package commands

import (
	"git.home.luguber.info/inful/ktdocs/internal/treeio"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	TreeFlag `embed:""`

	Path string `arg:"" help:"Destination file; the extension (.json, .yaml, .yml) selects the format" type:"path"`
}

func (e *ExportCmd) Run(_ *Global, root *CLI) error {
	_, tree, err := root.loadTree(e.TreeFlag)
	if err != nil {
		return err
	}
	return treeio.Save(e.Path, tree)
}
