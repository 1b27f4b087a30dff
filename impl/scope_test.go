package impl

import (
	"strings"
	"testing"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/lyraproj/issue/issue"
)

func TestDuplicateDeclaration(t *testing.T) {
	root := NewScope(`config`, ``)
	if _, err := root.AddValueVar(`a`, ``); err != nil {
		t.Fatal(err)
	}
	_, err := root.AddStringVar(`a`, ``)
	if err == nil {
		t.Fatal(`redeclaration of 'a' was accepted`)
	}
	rp, ok := err.(issue.Reported)
	if !ok {
		t.Fatalf(`expected issue.Reported, got %T`, err)
	}
	if rp.Code() != eval.DuplicateDeclaration {
		t.Errorf(`expected %s, got %s`, eval.DuplicateDeclaration, rp.Code())
	}
	if root.NumEntries() != 1 {
		t.Errorf(`expected original declaration to survive, scope has %d entries`, root.NumEntries())
	}
	if sym, _ := root.LookupLocal(`a`); !sym.IsNumeric() {
		t.Error(`original declaration was replaced`)
	}
}

func TestBuiltinRedeclaration(t *testing.T) {
	root := NewScope(`config`, ``)
	pi := 3.14159
	if _, err := Link(root, `pi`, &pi, ``, true); err != nil {
		t.Fatal(err)
	}
	own, err := root.AddValueVar(`pi`, ``)
	if err != nil {
		t.Fatalf(`declaration over a builtin was rejected: %v`, err)
	}
	if sym, _ := root.LookupLocal(`pi`); sym != own {
		t.Error(`declaration over a builtin did not replace it`)
	}
	if root.NumEntries() != 1 {
		t.Errorf(`expected 1 entry, got %d`, root.NumEntries())
	}
}

func TestResolve(t *testing.T) {
	root := NewScope(`config`, ``)
	a, _ := root.AddValueVar(`a`, ``)
	sub, _ := root.AddScope(`sub`, ``)

	sym, err := sub.Resolve(`a`)
	if err != nil {
		t.Fatal(err)
	}
	if sym != a {
		t.Error(`resolution did not reach the outer declaration`)
	}
	_, err = sub.Resolve(`missing`)
	if err == nil {
		t.Fatal(`resolution of an undeclared name succeeded`)
	}
	if rp, ok := err.(issue.Reported); !ok || rp.Code() != eval.UnresolvedReference {
		t.Errorf(`expected %s, got %v`, eval.UnresolvedReference, err)
	}
}

func TestShadowing(t *testing.T) {
	root := NewScope(`config`, ``)
	outer, err := root.AddValueVar(`a`, ``)
	if err != nil {
		t.Fatal(err)
	}
	setNumber(t, outer, 1)

	sub, err := root.AddScope(`sub`, ``)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := sub.AddValueVar(`a`, ``)
	if err != nil {
		t.Fatal(err)
	}
	setNumber(t, inner, 2)

	if sym, ok := sub.Lookup(`a`, true); !ok || sym != inner {
		t.Error(`inner declaration does not shadow outer`)
	}
	if v, _ := outer.AsNumber(); v != 1 {
		t.Errorf(`outer value changed to %v`, v)
	}
	if sym, ok := root.Lookup(`a`, true); !ok || sym != outer {
		t.Error(`outer scope does not resolve its own declaration`)
	}
}

func TestLookupScanScopes(t *testing.T) {
	root := NewScope(`config`, ``)
	if _, err := root.AddValueVar(`a`, ``); err != nil {
		t.Fatal(err)
	}
	sub, err := root.AddScope(`sub`, ``)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sub.Lookup(`a`, true); !ok {
		t.Error(`lexical lookup did not reach the outer scope`)
	}
	if _, ok := sub.Lookup(`a`, false); ok {
		t.Error(`confined lookup escaped to the outer scope`)
	}
	if _, ok := sub.LookupLocal(`a`); ok {
		t.Error(`local lookup escaped to the outer scope`)
	}
}

func TestLookupView(t *testing.T) {
	root := NewScope(`config`, ``)
	a, err := root.AddValueVar(`a`, `doc`)
	if err != nil {
		t.Fatal(err)
	}
	setNumber(t, a, 3)
	v, ok := root.LookupView(`a`, false)
	if !ok {
		t.Fatal(`view lookup failed`)
	}
	if v.Desc() != `doc` {
		t.Errorf(`expected 'doc', got '%s'`, v.Desc())
	}
	if n, _ := v.AsNumber(); n != 3 {
		t.Errorf(`expected 3, got %v`, n)
	}
}

func TestCloneIndependence(t *testing.T) {
	root := NewScope(`config`, ``)
	a, _ := root.AddValueVar(`a`, ``)
	setNumber(t, a, 1)
	sub, _ := root.AddScope(`sub`, ``)
	b, _ := sub.AddValueVar(`b`, ``)
	setNumber(t, b, 2)

	clone := root.Clone().(*SymbolScope)
	ca, ok := clone.LookupLocal(`a`)
	if !ok {
		t.Fatal(`clone is missing entry 'a'`)
	}
	if ca.Scope() != eval.Scope(clone) {
		t.Error(`cloned entry is not owned by the clone`)
	}
	setNumber(t, ca, 9)
	if v, _ := a.AsNumber(); v != 1 {
		t.Errorf(`mutation of clone changed the original to %v`, v)
	}

	cs, _ := clone.LookupLocal(`sub`)
	cb, ok := cs.(*SymbolScope).LookupLocal(`b`)
	if !ok {
		t.Fatal(`nested scope was not deep cloned`)
	}
	setNumber(t, cb, 9)
	if v, _ := b.AsNumber(); v != 2 {
		t.Errorf(`mutation of nested clone changed the original to %v`, v)
	}
}

func TestScopeNotScalar(t *testing.T) {
	root := NewScope(`config`, ``)
	sub, _ := root.AddScope(`sub`, ``)
	if _, err := sub.AsNumber(); err == nil {
		t.Error(`scope has a numeric representation`)
	}
	if _, err := sub.Call(nil); err == nil {
		t.Error(`scope is callable`)
	}
}

func TestWriteContents(t *testing.T) {
	root := NewScope(`config`, ``)
	a, _ := root.AddValueVar(`a`, `the first`)
	setNumber(t, a, 3.5)
	b, _ := root.AddStringVar(`b`, ``)
	setString(t, b, `hi`)
	sub, _ := root.AddScope(`sub`, `nested`)
	c, _ := sub.AddValueVar(`c`, ``)
	setNumber(t, c, 1)
	if _, err := root.AddScope(`d`, ``); err != nil {
		t.Fatal(err)
	}

	w := &strings.Builder{}
	root.WriteContents(w, ``, 24)
	expected := `Var a = 3.5;            // the first
String b = "hi";
Scope sub {             // nested
  Var c = 1;
}
Scope d;
`
	if w.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, w.String())
	}
}

func TestWriteSkipsBuiltins(t *testing.T) {
	root := NewScope(`config`, ``)
	pi := 3.14159
	if _, err := Link(root, `PI`, &pi, ``, true); err != nil {
		t.Fatal(err)
	}
	a, _ := root.AddValueVar(`a`, ``)
	setNumber(t, a, 1)

	w := &strings.Builder{}
	root.WriteContents(w, ``, 24)
	if strings.Contains(w.String(), `PI`) {
		t.Error(`builtin symbol appeared in serialization`)
	}
}

func TestWriteHostBacked(t *testing.T) {
	root := NewScope(`config`, ``)
	speed := 9.0
	if _, err := Link(root, `speed`, &speed, ``, false); err != nil {
		t.Fatal(err)
	}
	w := &strings.Builder{}
	root.WriteContents(w, ``, 24)
	if w.String() != "speed = 9;\n" {
		t.Errorf(`expected plain assignment for host backed symbol, got %q`, w.String())
	}
}

func setNumber(t *testing.T, sym eval.Symbol, v float64) {
	t.Helper()
	tmp := NewTempNumber(v)
	if err := sym.CopyValue(tmp); err != nil {
		t.Fatal(err)
	}
	eval.Release(tmp)
}

func setString(t *testing.T, sym eval.Symbol, v string) {
	t.Helper()
	tmp := NewTempString(v)
	if err := sym.CopyValue(tmp); err != nil {
		t.Fatal(err)
	}
	eval.Release(tmp)
}
