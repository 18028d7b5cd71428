/*
Dslrepl is an interactive shell that loads a grammar config once, then
lexes and parses one line of input at a time, printing the resulting
parse tree or the formatted parse error for each.

Usage:

	dslrepl --grammar FILE

History is kept across invocations in ~/.dslrepl_history, matching the
teacher's internal/input readline-backed reader.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/daanrutten/dsl-parser/grammar/config"
	"github.com/daanrutten/dsl-parser/lex"
	"github.com/daanrutten/dsl-parser/parse"
	"github.com/spf13/pflag"
)

var grammarFile = pflag.StringP("grammar", "g", "", "TOML grammar config file")

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *grammarFile == "" {
		fmt.Fprintln(os.Stderr, "dslrepl: --grammar is required")
		return 1
	}

	gf, err := os.Open(*grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslrepl: %v\n", err)
		return 1
	}
	terminals, rs, err := config.Load(gf)
	gf.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslrepl: %v\n", err)
		return 1
	}

	p, err := parse.New(rs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslrepl: %v\n", err)
		return 1
	}
	lexer := lex.New(append(terminals, rs.LiteralTerminals()...))

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".dslrepl_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "dsl> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslrepl: create readline: %v\n", err)
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "dslrepl: %v\n", err)
			return 1
		}
		if line == "" {
			continue
		}

		lineTokens := lexer.Split(line, nil)
		tree, err := p.Parse(lexer, lineTokens)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(tree.String())
	}
}
