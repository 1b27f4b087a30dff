package impl

import (
	"io"
	"strconv"
	"strings"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/curio-lang/curio-evaluator/utils"
	"github.com/lyraproj/issue/issue"
)

// Linkable enumerates the Go types a host variable may have in order to be
// linked into a scope.
type Linkable interface {
	bool | int | int64 | float64 | string
}

type (
	// linkedVar forwards reads and writes to a host owned variable. It holds
	// no storage of its own.
	linkedVar[T Linkable] struct {
		symbol
		ptr *T
	}

	// linkedFuns interacts with the host through a getter/setter pair which
	// are called on every access.
	linkedFuns[T Linkable] struct {
		symbol
		get func() T
		set func(T)
	}
)

// Link declares a symbol in scope that is linked to the host variable at
// ptr. The variable's current value becomes the script visible default and
// every script assignment updates it in place.
func Link[T Linkable](scope *SymbolScope, name string, ptr *T, desc string, builtin bool) (eval.Symbol, error) {
	v := &linkedVar[T]{symbol{name: name, desc: desc, scope: scope, builtin: builtin}, ptr}
	if err := scope.add(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// LinkFuns declares a symbol in scope whose reads call get and whose writes
// call set.
func LinkFuns[T Linkable](scope *SymbolScope, name string, get func() T, set func(T), desc string, builtin bool) (eval.Symbol, error) {
	v := &linkedFuns[T]{symbol{name: name, desc: desc, scope: scope, builtin: builtin}, get, set}
	if err := scope.add(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func scalarKind[T Linkable]() eval.Kind {
	var z T
	if _, ok := any(z).(string); ok {
		return eval.STRING
	}
	return eval.NUMBER
}

func linkedToNumber[T Linkable](v T, name string) (float64, error) {
	switch t := any(v).(type) {
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(any(v).(string)), 64)
		if err != nil {
			return 0, eval.Error(eval.NotANumber, issue.H{`name`: name})
		}
		return f, nil
	}
}

func linkedToString[T Linkable](v T) string {
	switch t := any(v).(type) {
	case bool:
		if t {
			return `1`
		}
		return `0`
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatNumber(t)
	default:
		return any(v).(string)
	}
}

func numberToLinked[T Linkable](f float64) T {
	var z T
	switch p := any(&z).(type) {
	case *bool:
		*p = f != 0
	case *int:
		*p = int(f)
	case *int64:
		*p = int64(f)
	case *float64:
		*p = f
	case *string:
		*p = formatNumber(f)
	}
	return z
}

func stringToLinked[T Linkable](s string, name string) (T, error) {
	var z T
	if p, ok := any(&z).(*string); ok {
		*p = s
		return z, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return z, eval.Error(eval.NotANumber, issue.H{`name`: name})
	}
	return numberToLinked[T](f), nil
}

func (v *linkedVar[T]) IsNumeric() bool {
	return scalarKind[T]() == eval.NUMBER
}

func (v *linkedVar[T]) IsString() bool {
	return scalarKind[T]() == eval.STRING
}

func (v *linkedVar[T]) IsLocal() bool {
	return false
}

func (v *linkedVar[T]) AsNumber() (float64, error) {
	return linkedToNumber(*v.ptr, v.describe())
}

func (v *linkedVar[T]) AsString() (string, error) {
	return linkedToString(*v.ptr), nil
}

func (v *linkedVar[T]) CopyValue(src eval.View) error {
	if v.IsNumeric() {
		f, err := src.AsNumber()
		if err != nil {
			return err
		}
		*v.ptr = numberToLinked[T](f)
		return nil
	}
	s, err := src.AsString()
	if err != nil {
		return err
	}
	nv, err := stringToLinked[T](s, v.describe())
	if err != nil {
		return err
	}
	*v.ptr = nv
	return nil
}

func (v *linkedVar[T]) Call([]eval.Symbol) (eval.Symbol, error) {
	return nil, eval.Error(eval.NotCallable, issue.H{`name`: v.describe()})
}

// Clone shares the link; both copies read and write the same host variable.
func (v *linkedVar[T]) Clone() eval.Symbol {
	return &linkedVar[T]{symbol{name: v.name, desc: v.desc, builtin: v.builtin}, v.ptr}
}

func (v *linkedVar[T]) Write(w io.Writer, prefix string, commentColumn int) {
	writeVarLine(w, prefix, ``, v.name, v.literal(), false, commentColumn, v.desc)
}

func (v *linkedVar[T]) literal() string {
	if v.IsString() {
		b := &strings.Builder{}
		utils.CurioQuote(b, linkedToString(*v.ptr))
		return b.String()
	}
	return linkedToString(*v.ptr)
}

func (v *linkedFuns[T]) IsNumeric() bool {
	return scalarKind[T]() == eval.NUMBER
}

func (v *linkedFuns[T]) IsString() bool {
	return scalarKind[T]() == eval.STRING
}

func (v *linkedFuns[T]) IsLocal() bool {
	return false
}

func (v *linkedFuns[T]) AsNumber() (float64, error) {
	return linkedToNumber(v.get(), v.describe())
}

func (v *linkedFuns[T]) AsString() (string, error) {
	return linkedToString(v.get()), nil
}

func (v *linkedFuns[T]) CopyValue(src eval.View) error {
	if v.IsNumeric() {
		f, err := src.AsNumber()
		if err != nil {
			return err
		}
		v.set(numberToLinked[T](f))
		return nil
	}
	s, err := src.AsString()
	if err != nil {
		return err
	}
	nv, err := stringToLinked[T](s, v.describe())
	if err != nil {
		return err
	}
	v.set(nv)
	return nil
}

func (v *linkedFuns[T]) Call([]eval.Symbol) (eval.Symbol, error) {
	return nil, eval.Error(eval.NotCallable, issue.H{`name`: v.describe()})
}

// Clone shares the accessor pair with the original.
func (v *linkedFuns[T]) Clone() eval.Symbol {
	return &linkedFuns[T]{symbol{name: v.name, desc: v.desc, builtin: v.builtin}, v.get, v.set}
}

func (v *linkedFuns[T]) Write(w io.Writer, prefix string, commentColumn int) {
	b := &strings.Builder{}
	if v.IsString() {
		utils.CurioQuote(b, linkedToString(v.get()))
	} else {
		b.WriteString(linkedToString(v.get()))
	}
	writeVarLine(w, prefix, ``, v.name, b.String(), false, commentColumn, v.desc)
}
