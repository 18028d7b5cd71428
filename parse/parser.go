// Package parse implements the table-driven shift/reduce runtime:
// Algorithm 4.44 from the purple dragon book (grounded on
// dekarrin-tunaq's internal/ictiobus/parse/lr.go's Parse loop and stack
// shapes), extended with per-state active-terminal lexer feedback and a
// readStack that tracks reduction width for quantified productions.
package parse

import (
	"fmt"

	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/internal/rtutil"
	"github.com/daanrutten/dsl-parser/lex"
	"github.com/daanrutten/dsl-parser/synerr"
	"github.com/daanrutten/dsl-parser/table"
	"github.com/daanrutten/dsl-parser/token"
)

// Parser pairs a built action table with the grammar it was built from.
// It is immutable after construction and safe to reuse across calls to
// Parse, including concurrent calls from several goroutines: the table is
// only read, and per-parse state lives entirely on the stacks inside Parse.
type Parser struct {
	rs  *grammar.RuleSet
	tbl *table.Table
}

// New builds a fresh action table for rs.
func New(rs *grammar.RuleSet) (*Parser, error) {
	tbl, err := table.Build(rs)
	if err != nil {
		return nil, err
	}
	return &Parser{rs: rs, tbl: tbl}, nil
}

// NewVersioned behaves like New, but persists the built table to
// table.Filename(version) (or loads it from there if that file already
// exists), per the optional table-persistence lifecycle.
func NewVersioned(rs *grammar.RuleSet, version string) (*Parser, error) {
	if loaded, err := table.Load(rs, version); err == nil {
		return &Parser{rs: rs, tbl: loaded}, nil
	}
	tbl, err := table.Build(rs)
	if err != nil {
		return nil, err
	}
	if err := tbl.Save(version); err != nil {
		return nil, err
	}
	return &Parser{rs: rs, tbl: tbl}, nil
}

// Table exposes the built action table, e.g. for String()/DumpAutomaton.
func (p *Parser) Table() *table.Table {
	return p.tbl
}

// Parse drives lx over lineTokens (the output of lex.Split or
// lex.SplitOffside: unknown line tokens interleaved with any pre-emitted
// indent/dedent/$ markers) to a single root ParseTree.
func (p *Parser) Parse(lx *lex.Lexer, lineTokens []token.LexTree) (token.Node, error) {
	stateStack := rtutil.Stack[int]{Of: []int{0}}
	readStack := rtutil.Stack[map[int]int]{Of: []map[int]int{{}}}
	symbolStack := rtutil.Stack[token.Node]{}

	i := 0
	index := 0
	var lexToken *token.LexTree

	push := func(newState int, cameFrom []*int) {
		prevTop := readStack.Peek()
		entry := map[int]int{}
		for r, src := range cameFrom {
			if src != nil {
				entry[r] = prevTop[*src] + 1
			}
		}
		stateStack.Push(newState)
		readStack.Push(entry)
	}

	for {
		var current token.LexTree
		if lexToken != nil {
			current = *lexToken
		} else {
			current = lineTokens[i]
		}

		if current.Type == token.Unknown {
			active := p.activeTerminals(stateStack.Peek())
			lt, err := lx.Next(current.Match[0], index, current.Line, active)
			if err != nil {
				return nil, err
			}
			if lt.Type == token.EndOfInput {
				i++
				lexToken = nil
				index = 0
				continue
			}
			index += len(lt.Match[0])
			lexToken = &lt
			continue
		}

		if current.Type == token.Whitespace {
			lexToken = nil
			continue
		}

		act := p.tbl.Action(stateStack.Peek(), current.Type)

		switch act.Kind {
		case table.Error:
			return nil, synerr.New(synerr.ParseNoAction,
				fmt.Sprintf("unexpected %s; %s", current.Type, p.expectedString(stateStack.Peek())),
				current.Line, current.Index)

		case table.Shift:
			symbolStack.Push(current)
			if lexToken != nil {
				lexToken = nil
			} else {
				i++
			}
			push(act.State, act.CameFrom)

		case table.Reduce:
			n := readStack.Peek()[act.Rule]
			children := make([]token.Node, n)
			for k := n - 1; k >= 0; k-- {
				children[k] = symbolStack.Pop()
				stateStack.Pop()
				readStack.Pop()
			}
			parent := token.ParseTree{Type: act.Key, Children: children}
			symbolStack.Push(parent)

			gotoAct := p.tbl.Action(stateStack.Peek(), parent.Type)
			push(gotoAct.State, gotoAct.CameFrom)

		case table.Accept:
			return symbolStack.Pop(), nil
		}
	}
}

// activeTerminals collects the terminal-type keys with a non-error
// action in state s, the per-state hint passed to the lexer so it
// doesn't speculatively match a terminal the grammar can't consume here.
func (p *Parser) activeTerminals(s int) map[string]struct{} {
	active := map[string]struct{}{}
	for _, symbol := range p.tbl.Symbols(s) {
		if p.rs.IsTerminal(symbol) {
			active[symbol] = struct{}{}
		}
	}
	return active
}
