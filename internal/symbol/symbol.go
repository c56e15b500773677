// Package symbol parses the dotted identifiers listed in a page's generate list.
//
// Parsing is purely lexical: an identifier is classified by the shape of its
// segments, never by resolving it against the documented library.
package symbol

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind classifies what a dotted identifier most likely refers to.
type Kind string

const (
	// KindModule is a name defined at module level, such as a function.
	KindModule Kind = "module"
	KindClass  Kind = "class"
	KindMember Kind = "member"
)

// ErrEmpty is returned when an identifier is blank.
var ErrEmpty = errors.New("symbol identifier is empty")

// Symbol is a parsed dotted identifier such as "kerastuner.Tuner.search".
type Symbol struct {
	// Raw is the identifier exactly as declared.
	Raw string
	// Package is the top-level import name.
	Package string
	// Modules are the sub-module segments between Package and Class.
	Modules []string
	// Class is the first capitalized segment, empty for module-level functions.
	Class string
	// Member holds the remaining segments after Class, joined with dots.
	Member string
}

// Parse splits id into its segments and classifies them.
func Parse(id string) (Symbol, error) {
	if strings.TrimSpace(id) == "" {
		return Symbol{}, ErrEmpty
	}
	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return Symbol{}, fmt.Errorf("symbol %q: expected a package-qualified name", id)
	}
	for i, seg := range segments {
		if seg == "" {
			return Symbol{}, fmt.Errorf("symbol %q: empty segment at position %d", id, i)
		}
		if !isIdentifier(seg) {
			return Symbol{}, fmt.Errorf("symbol %q: segment %q is not an identifier", id, seg)
		}
	}

	s := Symbol{Raw: id, Package: segments[0]}
	rest := segments[1:]
	for i, seg := range rest {
		if isExported(seg) {
			s.Class = seg
			s.Member = strings.Join(rest[i+1:], ".")
			return s, nil
		}
		s.Modules = append(s.Modules, seg)
	}
	// No class segment: the last segment is a module-level name.
	s.Member = s.Modules[len(s.Modules)-1]
	s.Modules = s.Modules[:len(s.Modules)-1]
	return s, nil
}

// MustParse is like Parse but panics on malformed input. Intended for literals.
func MustParse(id string) Symbol {
	s, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind reports what the identifier refers to.
func (s Symbol) Kind() Kind {
	switch {
	case s.Class == "":
		return KindModule
	case s.Member == "":
		return KindClass
	default:
		return KindMember
	}
}

// Owner returns the dotted identifier of the class owning a member, or the
// identifier itself for classes and module-level names.
func (s Symbol) Owner() string {
	if s.Class == "" || s.Member == "" {
		return s.Raw
	}
	parts := append([]string{s.Package}, s.Modules...)
	parts = append(parts, s.Class)
	return strings.Join(parts, ".")
}

// ShortName is the trailing segment.
func (s Symbol) ShortName() string {
	if i := strings.LastIndex(s.Raw, "."); i >= 0 {
		return s.Raw[i+1:]
	}
	return s.Raw
}

// Anchor returns a stable, lower-cased in-page anchor for the identifier.
func (s Symbol) Anchor() string {
	return strings.ToLower(s.Raw)
}

func isIdentifier(seg string) bool {
	for i, r := range seg {
		switch {
		case r == '_':
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
		case unicode.IsDigit(r) && r < unicode.MaxASCII && i > 0:
		default:
			return false
		}
	}
	return seg != ""
}

func isExported(seg string) bool {
	r := rune(seg[0])
	return unicode.IsUpper(r)
}
