package hash_test

import (
	"strings"
	"testing"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/curio-lang/curio-evaluator/hash"
	"github.com/curio-lang/curio-evaluator/impl"
)

func sym(v float64) eval.Symbol {
	s := impl.NewTempNumber(v)
	eval.Release(s)
	return s
}

func TestOrderPreserved(t *testing.T) {
	h := hash.NewSymbolHash(4)
	h.Put(`c`, sym(1))
	h.Put(`a`, sym(2))
	h.Put(`b`, sym(3))
	if strings.Join(h.Keys(), ``) != `cab` {
		t.Errorf(`expected insertion order cab, got %v`, h.Keys())
	}
	collected := ``
	h.EachPair(func(key string, _ eval.Symbol) {
		collected += key
	})
	if collected != `cab` {
		t.Errorf(`expected enumeration order cab, got %s`, collected)
	}
}

func TestPutIfAbsent(t *testing.T) {
	h := hash.NewSymbolHash(4)
	first := sym(1)
	if !h.PutIfAbsent(`a`, first) {
		t.Error(`insertion into an empty hash failed`)
	}
	if h.PutIfAbsent(`a`, sym(2)) {
		t.Error(`second insertion under the same key succeeded`)
	}
	if v, _ := h.Get(`a`); v != first {
		t.Error(`rejected insertion replaced the original value`)
	}
	if h.Len() != 1 {
		t.Errorf(`expected 1 entry, got %d`, h.Len())
	}
}

func TestPutReplaces(t *testing.T) {
	h := hash.NewSymbolHash(4)
	first := sym(1)
	second := sym(2)
	h.Put(`a`, first)
	old := h.Put(`a`, second)
	if old != first {
		t.Error(`replacement did not return the old value`)
	}
	if v, _ := h.Get(`a`); v != second {
		t.Error(`replacement did not store the new value`)
	}
}

func TestDelete(t *testing.T) {
	h := hash.NewSymbolHash(4)
	h.Put(`a`, sym(1))
	b := sym(2)
	h.Put(`b`, b)
	h.Put(`c`, sym(3))
	if old := h.Delete(`b`); old != b {
		t.Error(`delete did not return the removed value`)
	}
	if h.Includes(`b`) {
		t.Error(`deleted key is still present`)
	}
	if strings.Join(h.Keys(), ``) != `ac` {
		t.Errorf(`expected remaining order ac, got %v`, h.Keys())
	}
}

func TestDeleteReindexes(t *testing.T) {
	h := hash.NewSymbolHash(4)
	a := sym(1)
	b := sym(2)
	c := sym(3)
	d := sym(4)
	h.Put(`a`, a)
	h.Put(`b`, b)
	h.Put(`c`, c)
	h.Put(`d`, d)
	h.Delete(`a`)

	for key, expected := range map[string]eval.Symbol{`b`: b, `c`: c, `d`: d} {
		if v, ok := h.Get(key); !ok || v != expected {
			t.Errorf(`index of '%s' is stale after deleting an earlier entry`, key)
		}
	}
	if strings.Join(h.Keys(), ``) != `bcd` {
		t.Errorf(`expected remaining order bcd, got %v`, h.Keys())
	}
	h.Delete(`c`)
	if v, ok := h.Get(`d`); !ok || v != d {
		t.Error(`index of 'd' is stale after a second delete`)
	}
}

func TestCopyIsShallow(t *testing.T) {
	h := hash.NewSymbolHash(4)
	a := sym(1)
	h.Put(`a`, a)
	c := h.Copy()
	c.Put(`b`, sym(2))
	if h.Includes(`b`) {
		t.Error(`insertion into the copy changed the original`)
	}
	if v, _ := c.Get(`a`); v != a {
		t.Error(`copy does not share the symbols`)
	}
}

func TestAnyPair(t *testing.T) {
	h := hash.NewSymbolHash(4)
	h.Put(`a`, sym(1))
	h.Put(`b`, sym(2))
	if !h.AnyPair(func(key string, _ eval.Symbol) bool { return key == `b` }) {
		t.Error(`present pair not found`)
	}
	if h.AnyPair(func(key string, _ eval.Symbol) bool { return key == `x` }) {
		t.Error(`absent pair found`)
	}
	if hash.NewSymbolHash(0).AnyPair(func(string, eval.Symbol) bool { return true }) {
		t.Error(`empty hash has a pair`)
	}
}
