package table

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// String renders the table as a fixed-width grid, one row per state, one
// column per terminal (action) and non-terminal (goto), in the style of
// the teacher's slrTable.String: a header row of "A:<terminal>" /
// "G:<non-terminal>" columns, reflowed through rosed's table support
// rather than hand-aligned with fmt.
func (t *Table) String() string {
	terms := append(append([]string(nil), t.rs.Terminals()...), "$")
	nonTerms := t.rs.NonTerminals()

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}

	for s := 0; s < t.numStates; s++ {
		row := []string{fmt.Sprintf("%d", s), "|"}

		for _, term := range terms {
			act := t.Action(s, term)
			cell := ""
			switch act.Kind {
			case Accept:
				cell = "acc"
			case Reduce:
				cell = fmt.Sprintf("r%s(%d)", act.Key, act.Rule)
			case Shift:
				cell = fmt.Sprintf("s%d", act.State)
			}
			row = append(row, cell)
		}
		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if act := t.Action(s, nt); act.Kind == Shift {
				cell = fmt.Sprintf("%d", act.State)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
