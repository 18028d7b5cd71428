package table

import (
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
)

// automatonSnapshot is a flattened, binary-codec-friendly view of the
// canonical item-set collection, used only for DumpAutomaton below. It
// has no format guarantee: unlike the persisted action table, it is
// never read back by this package.
type automatonSnapshot struct {
	Items []string // one entry per state: newline-joined item strings
}

// DumpAutomaton writes a debug-only snapshot of t's canonical collection
// to path, for inspecting state explosion during grammar development.
// Unlike Save, this is not part of the persisted table contract: it
// encodes with rezi's binary codec rather than JSON, and nothing in this
// module ever reads it back.
func (t *Table) DumpAutomaton(path string) error {
	if t.col == nil {
		return fmt.Errorf("table has no item-set collection to dump (was it loaded from disk?)")
	}

	snap := automatonSnapshot{Items: make([]string, len(t.col.States))}
	for s, state := range t.col.States {
		line := ""
		for i, it := range state {
			if i > 0 {
				line += "\n"
			}
			line += it.String()
		}
		snap.Items[s] = line
	}

	data := rezi.EncBinary(snap)
	return os.WriteFile(path, data, 0o644)
}
