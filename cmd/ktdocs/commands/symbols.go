package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/ktdocs/internal/doctree"
	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"git.home.luguber.info/inful/ktdocs/internal/symbol"
)

// SymbolsCmd implements the 'symbols' command.
type SymbolsCmd struct {
	TreeFlag `embed:""`

	Kind string `short:"k" help:"Only list symbols of this kind (module, class or member)"`
}

func (s *SymbolsCmd) Run(g *Global, root *CLI) error {
	switch symbol.Kind(s.Kind) {
	case "", symbol.KindModule, symbol.KindClass, symbol.KindMember:
	default:
		return kterrors.ValidationFailed("kind", fmt.Sprintf("unknown symbol kind %q", s.Kind))
	}
	_, tree, err := root.loadTree(s.TreeFlag)
	if err != nil {
		return err
	}
	for _, ref := range doctree.Symbols(tree) {
		kind := "invalid"
		anchor := ""
		if sym, err := symbol.Parse(ref.Symbol); err == nil {
			kind = string(sym.Kind())
			anchor = sym.Anchor()
		} else {
			slog.Debug("Unparseable symbol", logfields.Symbol(ref.Symbol), logfields.Error(err))
		}
		if s.Kind != "" && s.Kind != kind {
			continue
		}
		if _, err := fmt.Fprintf(g.Out, "%s\t%s\t%s#%s\n", ref.Symbol, kind, ref.PagePath, anchor); err != nil {
			return err
		}
	}
	return nil
}
