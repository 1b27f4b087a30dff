package impl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/lyraproj/issue/issue"
)

// liveTemps counts temporary symbols that no container has claimed yet. It
// must return to its previous value after any completed Process call.
var liveTemps int64

// LiveTemporaries returns the number of currently live unclaimed temporary
// symbols. Intended for ownership verification in tests and host debugging.
func LiveTemporaries() int64 {
	return atomic.LoadInt64(&liveTemps)
}

type (
	// symbol carries the identity and flags shared by every symbol variant.
	symbol struct {
		name      string
		desc      string
		scope     eval.Scope
		builtin   bool
		temporary bool
		freed     bool
	}

	// adopter is satisfied by all symbols of this package. Containers use it
	// to claim ownership of a temporary.
	adopter interface {
		adopt()
	}

	// owned is satisfied by all symbols of this package. Scopes use it to
	// re-point the declaring scope of cloned entries.
	owned interface {
		setOwner(s eval.Scope)
	}
)

func (s *symbol) Name() string {
	return s.name
}

func (s *symbol) Desc() string {
	return s.desc
}

func (s *symbol) Scope() eval.Scope {
	return s.scope
}

func (s *symbol) IsNumeric() bool {
	return false
}

func (s *symbol) IsString() bool {
	return false
}

func (s *symbol) IsScope() bool {
	return false
}

func (s *symbol) IsFunction() bool {
	return false
}

func (s *symbol) IsLocal() bool {
	return true
}

func (s *symbol) IsBuiltin() bool {
	return s.builtin
}

func (s *symbol) IsTemporary() bool {
	return s.temporary
}

func (s *symbol) HasNumericReturn() bool {
	return false
}

func (s *symbol) HasStringReturn() bool {
	return false
}

// Free ends the lifetime of a temporary. Freeing a symbol twice, or freeing
// one that a container owns, is a defect in the calling evaluator, not in
// the script; it panics rather than reports.
func (s *symbol) Free() {
	if s.freed || !s.temporary {
		panic(eval.Error(eval.DoubleFree, issue.H{`name`: s.describe()}))
	}
	s.freed = true
	s.temporary = false
	atomic.AddInt64(&liveTemps, -1)
}

func (s *symbol) adopt() {
	if s.temporary {
		s.temporary = false
		atomic.AddInt64(&liveTemps, -1)
	}
}

func (s *symbol) setOwner(sc eval.Scope) {
	s.scope = sc
}

// markTemporary flags a freshly materialized symbol as unowned.
func (s *symbol) markTemporary() {
	s.temporary = true
	atomic.AddInt64(&liveTemps, 1)
}

func (s *symbol) describe() string {
	if s.name != `` {
		return s.name
	}
	return `<temporary>`
}

// adoptSymbol claims ownership of sym when it is temporary.
func adoptSymbol(sym eval.Symbol) {
	if sym.IsTemporary() {
		if a, ok := sym.(adopter); ok {
			a.adopt()
		}
	}
}

// formatNumber renders a numeric value the way it appears in script text.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeDesc terminates the current line, appending the description as a
// comment aligned to column when one is present.
func writeDesc(w io.Writer, desc string, column, lineLen int) {
	if desc == `` {
		io.WriteString(w, "\n")
		return
	}
	pad := column - lineLen
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(w, "%s// %s\n", strings.Repeat(` `, pad), desc)
}
