package hash

import (
	"github.com/curio-lang/curio-evaluator/eval"
)

// Mutable and order preserving hash with string keys and Symbol values. Used
// by scopes to keep their entries enumerable in declaration order.

type (
	symbolEntry struct {
		key   string
		value eval.Symbol
	}

	SymbolHash struct {
		entries []*symbolEntry
		index   map[string]int
	}
)

// NewSymbolHash returns an empty *SymbolHash initialized with given capacity
func NewSymbolHash(capacity int) *SymbolHash {
	return &SymbolHash{make([]*symbolEntry, 0, capacity), make(map[string]int, capacity)}
}

// Copy returns a shallow copy of this hash, i.e. the symbols themselves are not cloned
func (h *SymbolHash) Copy() *SymbolHash {
	entries := make([]*symbolEntry, len(h.entries))
	for i, e := range h.entries {
		entries[i] = &symbolEntry{e.key, e.value}
	}
	index := make(map[string]int, len(h.index))
	for k, v := range h.index {
		index[k] = v
	}
	return &SymbolHash{entries, index}
}

// EachKey calls the given consumer function once for each key in this hash
func (h *SymbolHash) EachKey(consumer func(key string)) {
	for _, e := range h.entries {
		consumer(e.key)
	}
}

// EachPair calls the given consumer function once for each key/value pair in this hash
func (h *SymbolHash) EachPair(consumer func(key string, value eval.Symbol)) {
	for _, e := range h.entries {
		consumer(e.key, e.value)
	}
}

// EachValue calls the given consumer function once for each symbol in this hash
func (h *SymbolHash) EachValue(consumer func(value eval.Symbol)) {
	for _, e := range h.entries {
		consumer(e.value)
	}
}

// AnyPair calls the given function once for each key/value pair in this hash. Return
// true when an invocation returns true. False otherwise.
// The method returns false if the hash is empty.
func (h *SymbolHash) AnyPair(f func(key string, value eval.Symbol) bool) bool {
	for _, e := range h.entries {
		if f(e.key, e.value) {
			return true
		}
	}
	return false
}

// Get returns a symbol from the hash together with a boolean to indicate if the key was present or not
func (h *SymbolHash) Get(key string) (eval.Symbol, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Includes returns true if the hash contains the given key
func (h *SymbolHash) Includes(key string) bool {
	_, ok := h.index[key]
	return ok
}

// IsEmpty returns true if the hash has no entries
func (h *SymbolHash) IsEmpty() bool {
	return len(h.entries) == 0
}

// Keys returns the keys of the hash in the order that they were first entered
func (h *SymbolHash) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Put adds a new key/value association to the hash or replaces the value of an existing association
func (h *SymbolHash) Put(key string, value eval.Symbol) (oldValue eval.Symbol) {
	if p, ok := h.index[key]; ok {
		e := h.entries[p]
		oldValue = e.value
		e.value = value
	} else {
		oldValue = nil
		h.index[key] = len(h.entries)
		h.entries = append(h.entries, &symbolEntry{key, value})
	}
	return
}

// PutIfAbsent adds a new key/value association to the hash and returns true. It
// returns false, and leaves the hash untouched, when the key is already present.
func (h *SymbolHash) PutIfAbsent(key string, value eval.Symbol) bool {
	if _, ok := h.index[key]; ok {
		return false
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, &symbolEntry{key, value})
	return true
}

// Delete the entry for the given key from the hash. Returns the old symbol or nil if not found
func (h *SymbolHash) Delete(key string) (oldValue eval.Symbol) {
	index := h.index
	oldValue = nil
	if p, ok := index[key]; ok {
		oldValue = h.entries[p].value
		delete(h.index, key)
		for k, v := range index {
			if v > p {
				index[k] = v - 1
			}
		}
		ne := make([]*symbolEntry, len(h.entries)-1)
		for i, e := range h.entries {
			if i < p {
				ne[i] = e
			} else if i > p {
				ne[i-1] = e
			}
		}
		h.entries = ne
	}
	return
}

// Len returns the number of entries in the hash
func (h *SymbolHash) Len() int {
	return len(h.entries)
}

// Values returns the symbols of the hash in the order that their respective keys were first entered
func (h *SymbolHash) Values() []eval.Symbol {
	values := make([]eval.Symbol, len(h.entries))
	for i, e := range h.entries {
		values[i] = e.value
	}
	return values
}
