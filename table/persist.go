package table

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daanrutten/dsl-parser/grammar"
)

// jsonAction is the exact on-disk shape of one Action: the
// sequence-of-maps representation named by the persisted table format,
// written with encoding/json because the format is fixed by that
// contract rather than a stylistic choice (rezi is used instead for the
// separate, non-contractual debug automaton snapshot in debugdump.go).
type jsonAction struct {
	Kind     string `json:"kind"`
	State    int    `json:"state,omitempty"`
	CameFrom []*int `json:"came_from,omitempty"`
	Key      string `json:"key,omitempty"`
	Rule     int    `json:"rule,omitempty"`
}

func toJSONAction(a Action) jsonAction {
	return jsonAction{
		Kind:     a.Kind.String(),
		State:    a.State,
		CameFrom: a.CameFrom,
		Key:      a.Key,
		Rule:     a.Rule,
	}
}

func fromJSONAction(j jsonAction) Action {
	a := Action{State: j.State, CameFrom: j.CameFrom, Key: j.Key, Rule: j.Rule}
	switch j.Kind {
	case "shift":
		a.Kind = Shift
	case "reduce":
		a.Kind = Reduce
	case "accept":
		a.Kind = Accept
	default:
		a.Kind = Error
	}
	return a
}

// Filename returns the path a table built with the given version tag is
// persisted to: "dsl-parser_v<version>.json" in the working directory.
func Filename(version string) string {
	return fmt.Sprintf("dsl-parser_v%s.json", version)
}

// Save writes t's action rows to Filename(version), atomically: the
// table is fully marshaled to a temp file in the same directory, then
// renamed over the destination, so a concurrent reader never observes a
// partially-written table.
func (t *Table) Save(version string) error {
	rows := make([]map[string]jsonAction, len(t.rows))
	for s, row := range t.rows {
		jrow := make(map[string]jsonAction, len(row))
		for symbol, act := range row {
			jrow[symbol] = toJSONAction(act)
		}
		rows[s] = jrow
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}

	dest := Filename(version)
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmp, dest, err)
	}
	return nil
}

// Load reads a table previously written by Save. The returned Table
// shares behavior with one freshly built from the same RuleSet (same
// parse results for every input) but carries no item-set Collection,
// since the persisted format stores only action rows.
func Load(rs *grammar.RuleSet, version string) (*Table, error) {
	data, err := os.ReadFile(Filename(version))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Filename(version), err)
	}

	var rows []map[string]jsonAction
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", Filename(version), err)
	}

	t := &Table{
		rs:        rs,
		numStates: len(rows),
		rows:      make([]map[string]Action, len(rows)),
	}
	for s, jrow := range rows {
		row := make(map[string]Action, len(jrow))
		for symbol, j := range jrow {
			row[symbol] = fromJSONAction(j)
		}
		t.rows[s] = row
	}

	return t, nil
}
