// Package config loads a grammar.RuleSet and its terminals from a TOML
// document, as an alternate textual construction path over the same
// data model grammar.New builds programmatically. Grounded on
// dekarrin-tunaq's internal/tqw package's toml.Unmarshal usage, but
// reaching for toml.Decode's MetaData instead: terminal declaration
// order must survive the round trip (the lexer's match tie-break
// depends on it), and Go map iteration has no stable order.
package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/synerr"
	"github.com/daanrutten/dsl-parser/token"
)

type document struct {
	Start     string              `toml:"start"`
	Terminals map[string]string   `toml:"terminals"`
	Rules     map[string][]string `toml:"rules"`
}

// Load reads a TOML grammar document from r: a top-level "start" string,
// a "[terminals]" table mapping terminal type name to pattern, and a
// "[rules]" table mapping non-terminal name to its ordered list of rule
// strings. It returns the resulting Terminals (in file declaration
// order) and the built RuleSet.
func Load(r io.Reader) ([]token.Terminal, *grammar.RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, synerr.NewWithoutPosition(synerr.ConfigInvalid,
			fmt.Sprintf("read grammar config: %v", err))
	}

	var doc document
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, nil, synerr.NewWithoutPosition(synerr.ConfigInvalid,
			fmt.Sprintf("parse grammar config: %v", err))
	}

	if doc.Start == "" {
		return nil, nil, synerr.NewWithoutPosition(synerr.ConfigInvalid, "grammar config missing top-level \"start\" key")
	}

	var termOrder, ruleOrder []string
	for _, k := range meta.Keys() {
		if len(k) != 2 {
			continue
		}
		switch k[0] {
		case "terminals":
			termOrder = append(termOrder, k[1])
		case "rules":
			ruleOrder = append(ruleOrder, k[1])
		}
	}

	terminals := make([]token.Terminal, 0, len(termOrder))
	for _, name := range termOrder {
		t, err := token.NewTerminal(name, doc.Terminals[name])
		if err != nil {
			return nil, nil, synerr.NewWithoutPosition(synerr.ConfigInvalid, err.Error())
		}
		terminals = append(terminals, t)
	}

	rs, err := grammar.New(terminals, doc.Rules, ruleOrder, doc.Start)
	if err != nil {
		return nil, nil, err
	}

	return terminals, rs, nil
}
