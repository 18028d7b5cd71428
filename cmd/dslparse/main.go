/*
Dslparse builds a grammar from a TOML config file, lexes and parses a
source file (or stdin) against it, and prints the resulting parse tree.

Usage:

	dslparse [flags] [FILE]

The flags are:

	-g, --grammar FILE
		TOML grammar config to build the parser from (required).

	-V, --version TAG
		Enable action-table persistence under the given version tag:
		the table is loaded from dsl-parser_v<TAG>.json if present, or
		built and written there otherwise.

	-o, --offside
		Use offside (indentation-sensitive) line splitting instead of
		plain line splitting.

	--dump-automaton FILE
		Additionally write a debug snapshot of the canonical item-set
		collection to FILE. When --version loads an already-persisted
		table, no file is written and an error is reported on stderr,
		since a rehydrated table carries no item-set collection.

If FILE is omitted, source text is read from stdin.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/daanrutten/dsl-parser/grammar/config"
	"github.com/daanrutten/dsl-parser/lex"
	"github.com/daanrutten/dsl-parser/parse"
	"github.com/daanrutten/dsl-parser/token"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = iota
	exitUsageError
	exitBuildError
	exitParseError
)

var (
	grammarFile   = pflag.StringP("grammar", "g", "", "TOML grammar config file")
	versionTag    = pflag.StringP("version", "V", "", "enable action-table persistence under this version tag")
	offside       = pflag.BoolP("offside", "o", false, "use offside line splitting")
	dumpAutomaton = pflag.String("dump-automaton", "", "write a debug automaton snapshot to this file")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *grammarFile == "" {
		fmt.Fprintln(os.Stderr, "dslparse: --grammar is required")
		return exitUsageError
	}

	gf, err := os.Open(*grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		return exitUsageError
	}
	defer gf.Close()

	terminals, rs, err := config.Load(gf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		return exitBuildError
	}

	var p *parse.Parser
	if *versionTag != "" {
		p, err = parse.NewVersioned(rs, *versionTag)
	} else {
		p, err = parse.New(rs)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		return exitBuildError
	}

	if *dumpAutomaton != "" {
		if err := p.Table().DumpAutomaton(*dumpAutomaton); err != nil {
			fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		}
	}

	var src []byte
	if pflag.NArg() > 0 {
		src, err = os.ReadFile(pflag.Arg(0))
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		return exitUsageError
	}

	lexer := lex.New(append(terminals, rs.LiteralTerminals()...))

	var lineTokens []token.LexTree
	if *offside {
		lineTokens, err = lexer.SplitOffside(string(src), nil)
	} else {
		lineTokens = lexer.Split(string(src), nil)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		return exitParseError
	}

	tree, err := p.Parse(lexer, lineTokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dslparse: %v\n", err)
		return exitParseError
	}

	fmt.Println(tree.String())
	return exitSuccess
}
