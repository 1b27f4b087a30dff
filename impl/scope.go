package impl

import (
	"io"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/curio-lang/curio-evaluator/hash"
	"github.com/lyraproj/issue/issue"
)

// SymbolScope is a symbol that owns an ordered table of other symbols,
// optionally standing in for a host object. Entries are enumerated in
// declaration order.
type SymbolScope struct {
	symbol
	entries  *hash.SymbolHash
	obj      eval.HostObject
	objOwned eval.Ownership
	typename string
}

// NewScope creates a free standing scope with no parent, typically the root
// of a configuration.
func NewScope(name, desc string) *SymbolScope {
	return &SymbolScope{
		symbol:   symbol{name: name, desc: desc},
		entries:  hash.NewSymbolHash(8),
		typename: keywordScope,
	}
}

// add installs sym under name. Redeclaring a name that is already present in
// this scope's own table is a reported configuration error; the original
// declaration is left untouched. Builtin entries are exempt and may be
// redeclared over.
func (s *SymbolScope) add(name string, sym eval.Symbol) error {
	if !s.entries.PutIfAbsent(name, sym) {
		prior, _ := s.entries.Get(name)
		if !prior.IsBuiltin() {
			return eval.Error(eval.DuplicateDeclaration, issue.H{`name`: name, `scope`: s.name})
		}
		s.entries.Put(name, sym)
	}
	adoptSymbol(sym)
	return nil
}

// AddValueVar declares an internal numeric variable initialized to zero.
func (s *SymbolScope) AddValueVar(name, desc string) (eval.Symbol, error) {
	v := &valueVar{symbol: symbol{name: name, desc: desc, scope: s}}
	if err := s.add(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddStringVar declares an internal string variable initialized to empty.
func (s *SymbolScope) AddStringVar(name, desc string) (eval.Symbol, error) {
	v := &stringVar{symbol: symbol{name: name, desc: desc, scope: s}}
	if err := s.add(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddScope declares a nested scope inside of this one.
func (s *SymbolScope) AddScope(name, desc string) (*SymbolScope, error) {
	n := &SymbolScope{
		symbol:   symbol{name: name, desc: desc, scope: s},
		entries:  hash.NewSymbolHash(8),
		typename: keywordScope,
	}
	if err := s.add(name, n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddObjectScope declares a nested scope that stands in for the given host
// object. With eval.OWNED the object's lifetime follows the scope; with
// eval.BORROWED the host manages it.
func (s *SymbolScope) AddObjectScope(name, desc, typename string, obj eval.HostObject, ownership eval.Ownership) (*SymbolScope, error) {
	n := &SymbolScope{
		symbol:   symbol{name: name, desc: desc, scope: s},
		entries:  hash.NewSymbolHash(8),
		obj:      obj,
		objOwned: ownership,
		typename: typename,
	}
	if err := s.add(name, n); err != nil {
		return nil, err
	}
	return n, nil
}

// SetBuiltin marks this scope as part of the language itself, excluding it
// from serialization.
func (s *SymbolScope) SetBuiltin() {
	s.builtin = true
}

func (s *SymbolScope) IsScope() bool {
	return true
}

// IsLocal is true for scopes declared by the script; scopes that stand in
// for a host object are declared by the host.
func (s *SymbolScope) IsLocal() bool {
	return s.obj == nil
}

// Typename returns the declaring keyword of this scope; either the plain
// scope keyword or the registered name of the bound host type.
func (s *SymbolScope) Typename() string {
	return s.typename
}

func (s *SymbolScope) Object() eval.HostObject {
	return s.obj
}

func (s *SymbolScope) NumEntries() int {
	return s.entries.Len()
}

func (s *SymbolScope) AsNumber() (float64, error) {
	return 0, eval.Error(eval.NotANumber, issue.H{`name`: s.name})
}

func (s *SymbolScope) AsString() (string, error) {
	return ``, eval.Error(eval.NotAString, issue.H{`name`: s.name})
}

func (s *SymbolScope) CopyValue(eval.View) error {
	return eval.Error(eval.NotWritable, issue.H{`name`: s.name})
}

func (s *SymbolScope) Call([]eval.Symbol) (eval.Symbol, error) {
	return nil, eval.Error(eval.NotCallable, issue.H{`name`: s.name})
}

// LookupLocal consults this scope's own table only.
func (s *SymbolScope) LookupLocal(name string) (eval.Symbol, bool) {
	return s.entries.Get(name)
}

// Lookup returns the nearest enclosing declaration of name, scanning outer
// scopes unless scanScopes is false.
func (s *SymbolScope) Lookup(name string, scanScopes bool) (eval.Symbol, bool) {
	if sym, ok := s.entries.Get(name); ok {
		return sym, true
	}
	if !scanScopes || s.scope == nil {
		return nil, false
	}
	return s.scope.Lookup(name, true)
}

// Resolve is Lookup for callers that treat an unresolved name as an error,
// typically a parser resolving leaf references.
func (s *SymbolScope) Resolve(name string) (eval.Symbol, error) {
	if sym, ok := s.Lookup(name, true); ok {
		return sym, nil
	}
	return nil, eval.Error(eval.UnresolvedReference, issue.H{`name`: name})
}

// LookupView is Lookup narrowed to the read-only capability set.
func (s *SymbolScope) LookupView(name string, scanScopes bool) (eval.View, bool) {
	sym, ok := s.Lookup(name, scanScopes)
	if !ok {
		return nil, false
	}
	return sym, true
}

// Clone deep copies this scope and every entry inside it. The clone refers
// to the same host object, but never owns it; a caller that needs object
// identity must re-wire the link itself.
func (s *SymbolScope) Clone() eval.Symbol {
	c := &SymbolScope{
		symbol:   symbol{name: s.name, desc: s.desc, builtin: s.builtin},
		entries:  hash.NewSymbolHash(s.entries.Len()),
		obj:      s.obj,
		objOwned: eval.BORROWED,
		typename: s.typename,
	}
	s.entries.EachPair(func(name string, sym eval.Symbol) {
		cs := sym.Clone()
		if o, ok := cs.(owned); ok {
			o.setOwner(c)
		}
		c.entries.Put(name, cs)
	})
	return c
}

// WriteContents writes every non-builtin entry in declaration order.
func (s *SymbolScope) WriteContents(w io.Writer, prefix string, commentColumn int) {
	s.entries.EachValue(func(sym eval.Symbol) {
		if sym.IsBuiltin() {
			return
		}
		sym.Write(w, prefix, commentColumn)
	})
}

// Write declares this scope and, when it has non-builtin contents, a brace
// block holding them. Builtin scopes are not written at all.
func (s *SymbolScope) Write(w io.Writer, prefix string, commentColumn int) {
	if s.builtin {
		return
	}

	line := prefix + s.typename + ` ` + s.name
	hasBody := s.entries.AnyPair(func(_ string, sym eval.Symbol) bool {
		return !sym.IsBuiltin()
	})
	if hasBody {
		line += ` {`
	} else {
		line += `;`
	}
	io.WriteString(w, line)
	writeDesc(w, s.desc, commentColumn, len(line))

	if hasBody {
		s.WriteContents(w, prefix+`  `, commentColumn)
		io.WriteString(w, prefix+"}\n")
	}
}

// Close tears the scope down: entries first, each of which may close nested
// scopes of its own, then the host object when this scope owns it.
func (s *SymbolScope) Close() error {
	var err error
	s.entries.EachValue(func(sym eval.Symbol) {
		if c, ok := sym.(io.Closer); ok {
			if e := c.Close(); e != nil && err == nil {
				err = e
			}
		}
	})
	s.entries = hash.NewSymbolHash(0)
	if s.obj != nil && s.objOwned == eval.OWNED {
		if c, ok := s.obj.(io.Closer); ok {
			if e := c.Close(); e != nil && err == nil {
				err = e
			}
		}
	}
	s.obj = nil
	return err
}
