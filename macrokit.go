// Package macrokit exposes the module's macro entry points. Each macro is a
// pure function from one token stream to another: the success payload
// replaces the invocation site, and on a syntax error the payload is instead
// a stream that raises the diagnostic when compiled. The host passes either
// straight back to the compiler.
package macrokit

import (
	"sort"
	"sync"

	"github.com/macroforge/macrokit/diag"
	"github.com/macroforge/macrokit/idents"
	"github.com/macroforge/macrokit/matchlit"
	"github.com/macroforge/macrokit/token"
)

// Macro is one macro transform. A nil error means the returned stream is the
// expansion; otherwise the caller decides how to surface the error.
type Macro func(token.Stream) (token.Stream, *diag.SyntaxError)

// Idents runs the identifier-synthesis macro, flattening errors into their
// diagnostic streams.
func Idents(ts token.Stream) token.Stream {
	return flatten(idents.Expand(ts))
}

// MatchLit runs the literal-dispatch macro, flattening errors into their
// diagnostic streams.
func MatchLit(ts token.Stream) token.Stream {
	return flatten(matchlit.Expand(ts))
}

func flatten(out token.Stream, err *diag.SyntaxError) token.Stream {
	if err != nil {
		return err.Stream()
	}
	return out
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Macro{
		"idents":    idents.Expand,
		"match_lit": matchlit.Expand,
	}
)

// Register adds a named macro. Registering an existing name replaces it.
func Register(name string, m Macro) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = m
}

// Lookup returns the macro registered under name.
func Lookup(name string) (Macro, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	return m, ok
}

// Names returns the registered macro names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
