package impl

import (
	"io"

	"github.com/curio-lang/curio-evaluator/errors"
	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/lyraproj/issue/issue"
)

type (
	// Signature captures a native callable's fixed return and argument kinds
	// at registration time.
	Signature struct {
		Returns eval.Kind
		Params  []eval.Kind
	}

	// NativeFunction is the Go callable wrapped by a function symbol. The
	// argument list has been validated against the signature before it is
	// invoked. A callable must return a fresh temporary (or a scope owned
	// symbol), never one of its own arguments; the arguments are released
	// when the call returns.
	NativeFunction func(args []eval.Symbol) (eval.Symbol, error)

	function struct {
		symbol
		sig Signature
		fun NativeFunction
	}
)

// NewFunction declares a function symbol in scope wrapping the given native
// callable.
func NewFunction(scope *SymbolScope, name string, sig Signature, fun NativeFunction, desc string, builtin bool) (eval.Symbol, error) {
	f := &function{symbol{name: name, desc: desc, scope: scope, builtin: builtin}, sig, fun}
	if err := scope.add(name, f); err != nil {
		return nil, err
	}
	return f, nil
}

// NumberFun1 adapts a unary float64 function to a NativeFunction producing a
// temporary numeric result.
func NumberFun1(f func(a float64) float64) NativeFunction {
	return func(args []eval.Symbol) (eval.Symbol, error) {
		a, err := args[0].AsNumber()
		if err != nil {
			return nil, err
		}
		return NewTempNumber(f(a)), nil
	}
}

// NumberFun2 adapts a binary float64 function to a NativeFunction producing
// a temporary numeric result.
func NumberFun2(f func(a, b float64) float64) NativeFunction {
	return func(args []eval.Symbol) (eval.Symbol, error) {
		a, err := args[0].AsNumber()
		if err != nil {
			return nil, err
		}
		b, err := args[1].AsNumber()
		if err != nil {
			return nil, err
		}
		return NewTempNumber(f(a, b)), nil
	}
}

func (f *function) IsFunction() bool {
	return true
}

func (f *function) IsLocal() bool {
	return false
}

func (f *function) HasNumericReturn() bool {
	return f.sig.Returns == eval.NUMBER
}

func (f *function) HasStringReturn() bool {
	return f.sig.Returns == eval.STRING
}

func (f *function) AsNumber() (float64, error) {
	return 0, eval.Error(eval.NotANumber, issue.H{`name`: f.name})
}

func (f *function) AsString() (string, error) {
	return ``, eval.Error(eval.NotAString, issue.H{`name`: f.name})
}

func (f *function) CopyValue(eval.View) error {
	return eval.Error(eval.NotWritable, issue.H{`name`: f.name})
}

func (f *function) Call(args []eval.Symbol) (eval.Symbol, error) {
	if err := f.validate(args); err != nil {
		return nil, eval.Error(eval.IllegalArguments, issue.H{`name`: f.name, `message`: err.Error()})
	}
	result, err := f.fun(args)
	if err != nil {
		if _, ok := err.(issue.Reported); ok {
			return nil, err
		}
		return nil, eval.Error(eval.IllegalArguments, issue.H{`name`: f.name, `message`: err.Error()})
	}
	return result, nil
}

func (f *function) validate(args []eval.Symbol) errors.ArgumentError {
	if len(args) != len(f.sig.Params) {
		return errors.NewIllegalArgumentCount(f.name, len(f.sig.Params), len(args))
	}
	for i, k := range f.sig.Params {
		if k == eval.NUMBER && !args[i].IsNumeric() {
			return errors.NewIllegalArgumentType(f.name, i, eval.NUMBER.String(), kindName(args[i]))
		}
		if k == eval.STRING && !(args[i].IsString() || args[i].IsNumeric()) {
			return errors.NewIllegalArgumentType(f.name, i, eval.STRING.String(), kindName(args[i]))
		}
	}
	return nil
}

// Clone shares the wrapped callable with the original.
func (f *function) Clone() eval.Symbol {
	return &function{symbol{name: f.name, desc: f.desc, builtin: f.builtin}, f.sig, f.fun}
}

// Write emits nothing; functions are registered by the host and have no
// script text representation.
func (f *function) Write(io.Writer, string, int) {
}

func kindName(v eval.View) string {
	switch {
	case v.IsNumeric():
		return eval.NUMBER.String()
	case v.IsString():
		return eval.STRING.String()
	case v.IsScope():
		return `scope`
	case v.IsFunction():
		return `function`
	default:
		return eval.VOID.String()
	}
}
