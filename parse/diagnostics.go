package parse

import (
	"strings"

	"github.com/daanrutten/dsl-parser/table"
	"github.com/dekarrin/rosed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// expectedString renders the "expected a Foo, a Bar or an Baz" clause
// appended to a PARSE_NO_ACTION message, mirroring the shape of the
// teacher's getExpectedString/findExpectedTokens pair in
// internal/ictiobus/parse/lr.go, but driving the token-class "human"
// name through title-casing instead of a stored display string.
func (p *Parser) expectedString(state int) string {
	var names []string
	for _, t := range p.rs.Terminals() {
		if p.tbl.Action(state, t).Kind == table.Error {
			continue
		}
		names = append(names, humanName(t))
	}

	if len(names) == 0 {
		return "expected end of input"
	}

	var sb strings.Builder
	sb.WriteString("expected ")
	for i, name := range names {
		if i > 0 {
			if i == len(names)-1 {
				sb.WriteString(" or ")
			} else {
				sb.WriteString(", ")
			}
		}
		sb.WriteString(articleFor(name))
		sb.WriteRune(' ')
		sb.WriteString(name)
	}

	return rosed.Edit(sb.String()).Wrap(100).String()
}

// humanName title-cases a raw terminal type ("number", "open_paren") into
// a display form ("Number", "Open Paren").
func humanName(terminalType string) string {
	spaced := strings.ReplaceAll(terminalType, "_", " ")
	return titleCaser.String(spaced)
}

// articleFor picks "a" or "an" by the first rune of name.
func articleFor(name string) string {
	if name == "" {
		return "a"
	}
	switch name[0] {
	case 'A', 'E', 'I', 'O', 'U', 'a', 'e', 'i', 'o', 'u':
		return "an"
	default:
		return "a"
	}
}
