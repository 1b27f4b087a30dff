package impl

import (
	"github.com/curio-lang/curio-evaluator/eval"
	"gopkg.in/yaml.v2"
)

// YamlSnapshot renders the current state of scope as a YAML document. It is
// a one way export for host diagnostics; the script text form produced by
// Write remains the round-trippable representation. Builtin symbols and
// functions are omitted and entry order follows declaration order.
func YamlSnapshot(scope *SymbolScope) ([]byte, error) {
	m, err := yamlScope(scope)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(m)
}

func yamlScope(scope *SymbolScope) (yaml.MapSlice, error) {
	m := make(yaml.MapSlice, 0, scope.NumEntries())
	var err error
	scope.entries.EachPair(func(name string, sym eval.Symbol) {
		if err != nil || sym.IsBuiltin() || sym.IsFunction() {
			return
		}
		var v interface{}
		if v, err = yamlValue(sym); err == nil {
			m = append(m, yaml.MapItem{Key: name, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func yamlValue(sym eval.Symbol) (interface{}, error) {
	if s, ok := sym.(*SymbolScope); ok {
		return yamlScope(s)
	}
	if sym.IsNumeric() {
		return sym.AsNumber()
	}
	return sym.AsString()
}
