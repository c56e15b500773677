package scaffold

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// Heading is a Markdown heading found in a page body.
type Heading struct {
	Level int
	Text  string
}

// ExtractHeadings parses body with Goldmark and returns its headings in order.
func ExtractHeadings(body []byte) []Heading {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var headings []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		headings = append(headings, Heading{Level: h.Level, Text: inlineText(h, body)})
		return gmast.WalkSkipChildren, nil
	})
	return headings
}

// inlineText concatenates the literal text below n, including code spans.
func inlineText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(source))
		case *gmast.String:
			b.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// missingSymbols returns the symbols that have no level-3 heading in body.
func missingSymbols(body []byte, symbols []string) []string {
	present := make(map[string]struct{})
	for _, h := range ExtractHeadings(body) {
		if h.Level == 3 {
			present[h.Text] = struct{}{}
		}
	}
	var missing []string
	for _, sym := range symbols {
		if _, ok := present[sym]; !ok {
			missing = append(missing, sym)
		}
	}
	return missing
}

// Placeholders returns the symbols named by generate markers in the HTML
// blocks of body, in order of appearance. Markers inside code are ignored.
func Placeholders(body []byte) []string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var symbols []string
	seen := make(map[string]struct{})
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		block, ok := n.(*gmast.HTMLBlock)
		if !ok {
			return gmast.WalkContinue, nil
		}
		var raw bytes.Buffer
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			raw.Write(seg.Value(body))
		}
		if block.HasClosure() {
			raw.Write(block.ClosureLine.Value(body))
		}
		for _, sym := range markerComments(raw.Bytes()) {
			if _, dup := seen[sym]; dup {
				continue
			}
			seen[sym] = struct{}{}
			symbols = append(symbols, sym)
		}
		return gmast.WalkSkipChildren, nil
	})
	return symbols
}

// markerComments tokenizes raw HTML and returns the symbol of every
// generate marker comment.
func markerComments(raw []byte) []string {
	var symbols []string
	z := html.NewTokenizer(bytes.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return symbols
		}
		if tt != html.CommentToken {
			continue
		}
		fields := strings.Fields(string(z.Token().Data))
		if len(fields) == 2 && fields[0] == GenerateMarker {
			symbols = append(symbols, fields[1])
		}
	}
}

// unknownPlaceholders returns placeholder symbols that are not in symbols.
func unknownPlaceholders(body []byte, symbols []string) []string {
	listed := make(map[string]struct{}, len(symbols))
	for _, sym := range symbols {
		listed[sym] = struct{}{}
	}
	var unknown []string
	for _, sym := range Placeholders(body) {
		if _, ok := listed[sym]; !ok {
			unknown = append(unknown, sym)
		}
	}
	return unknown
}
