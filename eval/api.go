package eval

import (
	"io"

	"github.com/lyraproj/issue/issue"
)

type (
	// Kind classifies the scalar representation of a value produced by a
	// symbol or an AST node.
	Kind int

	// Ownership tells whether a scope owns its bound host object or merely
	// references an object whose lifetime the host manages.
	Ownership int

	// View is the read-only capability set of a Symbol. Lookups that must not
	// permit mutation of their result return a View.
	View interface {
		// Name returns the name under which the symbol was declared. Literals
		// and other unnamed temporaries return the empty string.
		Name() string

		// Desc returns the documentation string attached at declaration.
		Desc() string

		// IsNumeric is true when the symbol can be represented as a number.
		IsNumeric() bool

		// IsString is true when the symbol can be represented as a string.
		IsString() bool

		IsScope() bool
		IsFunction() bool

		// IsLocal is true when the symbol owns its storage rather than
		// forwarding to a host-provided variable or object.
		IsLocal() bool

		// IsBuiltin is true for symbols that belong to the language itself.
		// Builtin symbols never appear in bulk serialization.
		IsBuiltin() bool

		// IsTemporary is true while no container has claimed ownership of
		// the symbol. See Release.
		IsTemporary() bool

		// HasNumericReturn is true for functions that return a number.
		HasNumericReturn() bool

		// HasStringReturn is true for functions that return a string.
		HasStringReturn() bool

		AsNumber() (float64, error)
		AsString() (string, error)

		// Write renders the symbol as script text that, when parsed again,
		// reproduces its current state. The description, if any, is written
		// as a trailing comment aligned to commentColumn.
		Write(w io.Writer, prefix string, commentColumn int)
	}

	// Symbol is a named, typed, scope-linked entity representing a value,
	// variable link, callable, or scope.
	Symbol interface {
		View

		// Scope returns the declaring scope. Temporaries and the root scope
		// return nil.
		Scope() Scope

		// CopyValue overwrites this symbol's underlying value from src,
		// coercing between numeric and string representations as needed.
		CopyValue(src View) error

		// Call invokes the symbol as a function. Argument count and types
		// are validated against the signature captured at registration.
		Call(args []Symbol) (Symbol, error)

		// Clone returns an independently owned deep copy with the temporary
		// flag cleared.
		Clone() Symbol

		// Free ends the lifetime of a temporary symbol. It must be called at
		// most once and only on temporaries; use Release for the checked
		// variant.
		Free()
	}

	// Scope is a Symbol that also owns an ordered name to Symbol table and
	// supports lexical lookup through its chain of parents.
	Scope interface {
		Symbol

		// LookupLocal consults this scope's own table only.
		LookupLocal(name string) (Symbol, bool)

		// Lookup returns the nearest enclosing declaration of name. When
		// scanScopes is false the search is confined to this scope.
		Lookup(name string, scanScopes bool) (Symbol, bool)

		// LookupView is Lookup restricted to the read-only capability set.
		LookupView(name string, scanScopes bool) (View, bool)

		// NumEntries returns the number of symbols owned by this scope.
		NumEntries() int

		// WriteContents writes every non-builtin entry, in declaration
		// order, to w.
		WriteContents(w io.Writer, prefix string, commentColumn int)

		// Object returns the bound host object, or nil.
		Object() HostObject
	}

	// Node is one element of the parsed expression/statement tree. Nodes are
	// built once by the parser and evaluated through Process. All of the
	// classification queries are static; none of them evaluate anything.
	Node interface {
		Name() string

		Parent() Node
		SetParent(p Node)

		// Scope returns the scope governing this node, found by walking
		// parents up to the nearest block.
		Scope() Scope

		// Location returns the node's position in the script source, or nil
		// when the parser did not record one.
		Location() issue.Location

		IsNumeric() bool
		IsString() bool
		HasValue() bool
		HasNumericReturn() bool
		HasStringReturn() bool
		IsLeaf() bool
		IsInternal() bool

		NumChildren() int
		Child(i int) Node

		// Process evaluates the node and returns its result. The result is
		// either a symbol owned by some scope or a fresh temporary that the
		// caller must Release or adopt. Nodes that yield no value return nil.
		Process() (Symbol, error)

		// Write regenerates the script text of this node.
		Write(w io.Writer, offset string)
	}

	// HostObject is the minimal contract a native object satisfies to be
	// addressable from a scope.
	HostObject interface {
		// SetupConfig is invoked exactly once, after both the object and the
		// scope that represents it have been constructed. Implementations
		// use it to declare their member symbols.
		SetupConfig() error
	}

	// EventHook receives the unevaluated action subtree and the evaluated
	// argument snapshot of an event declaration. What happens to the binding
	// afterwards is entirely up to the host.
	EventHook func(action Node, args []Symbol) error
)

const (
	VOID = Kind(iota)
	NUMBER
	STRING
)

const (
	BORROWED = Ownership(iota)
	OWNED
)

func (k Kind) String() string {
	switch k {
	case NUMBER:
		return `number`
	case STRING:
		return `string`
	default:
		return `void`
	}
}

// Release frees s unless some container has already claimed it. Safe to call
// with nil.
func Release(s Symbol) {
	if s != nil && s.IsTemporary() {
		s.Free()
	}
}

// Error creates a Reported with the given issue code and arguments
func Error(issueCode issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(issueCode, issue.SEVERITY_ERROR, args, nil)
}

// Error2 creates a Reported with the given issue code, location, and arguments
func Error2(location issue.Location, issueCode issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(issueCode, issue.SEVERITY_ERROR, args, location)
}
