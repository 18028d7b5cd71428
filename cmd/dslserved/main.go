/*
Dslserved exposes grammar build and parse operations as an HTTP API.

Usage:

	dslserved [--addr HOST:PORT]

	POST /v1/grammars
		Body: a TOML grammar config (see grammar/config). Builds its
		action table and returns {"id": "<uuid>"}.

	POST /v1/grammars/{id}/parse
		Body: source text to parse against the previously built
		grammar id. Returns the parse tree as JSON, or a 422 with
		{"error": "..."} on a lex/parse failure.
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/daanrutten/dsl-parser/grammar/config"
	"github.com/daanrutten/dsl-parser/lex"
	"github.com/daanrutten/dsl-parser/parse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

var addr = pflag.String("addr", ":8080", "address to listen on")

// registry holds one built parser per grammar ID, guarded by a
// sync.RWMutex: concurrent /parse requests for the same grammar share
// the built table (it is immutable and safe to reuse across calls, per
// the parser's concurrency contract), while registering a newly built
// grammar takes the write lock.
type registry struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*builtGrammar
}

type builtGrammar struct {
	parser *parse.Parser
	lexer  *lex.Lexer
}

func newRegistry() *registry {
	return &registry{byID: map[uuid.UUID]*builtGrammar{}}
}

func (reg *registry) put(bg *builtGrammar) uuid.UUID {
	id := uuid.New()
	reg.mu.Lock()
	reg.byID[id] = bg
	reg.mu.Unlock()
	return id
}

func (reg *registry) get(id uuid.UUID) (*builtGrammar, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	bg, ok := reg.byID[id]
	return bg, ok
}

func main() {
	pflag.Parse()

	reg := newRegistry()

	r := chi.NewRouter()
	r.Post("/v1/grammars", handleCreateGrammar(reg))
	r.Post("/v1/grammars/{id}/parse", handleParse(reg))

	fmt.Fprintf(os.Stderr, "dslserved: listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		fmt.Fprintf(os.Stderr, "dslserved: %v\n", err)
		os.Exit(1)
	}
}

func handleCreateGrammar(reg *registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		terminals, rs, err := config.Load(req.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		p, err := parse.New(rs)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}

		id := reg.put(&builtGrammar{parser: p, lexer: lex.New(append(terminals, rs.LiteralTerminals()...))})
		writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
	}
}

func handleParse(reg *registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		bg, ok := reg.get(id)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Errorf("no grammar with id %s", id))
			return
		}

		src, err := io.ReadAll(req.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		lineTokens := bg.lexer.Split(string(src), nil)
		tree, err := bg.parser.Parse(bg.lexer, lineTokens)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}

		writeJSON(w, http.StatusOK, tree)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
