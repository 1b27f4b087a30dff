package impl

import (
	"io"
	"strconv"
	"strings"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/curio-lang/curio-evaluator/utils"
	"github.com/lyraproj/issue/issue"
)

const (
	keywordValue  = `Var`
	keywordString = `String`
	keywordScope  = `Scope`
)

type (
	// valueVar is a symbol with owned numeric storage, used for scratch and
	// script declared variables with no host backing.
	valueVar struct {
		symbol
		value float64
	}

	// stringVar is the string counterpart of valueVar.
	stringVar struct {
		symbol
		value string
	}
)

// NewTempNumber materializes an unnamed numeric symbol owned by nobody. The
// receiver of the value must adopt or Release it.
func NewTempNumber(value float64) eval.Symbol {
	v := &valueVar{value: value}
	v.markTemporary()
	return v
}

// NewTempString materializes an unnamed string symbol owned by nobody.
func NewTempString(value string) eval.Symbol {
	v := &stringVar{value: value}
	v.markTemporary()
	return v
}

func (v *valueVar) IsNumeric() bool {
	return true
}

func (v *valueVar) AsNumber() (float64, error) {
	return v.value, nil
}

func (v *valueVar) AsString() (string, error) {
	return formatNumber(v.value), nil
}

func (v *valueVar) CopyValue(src eval.View) error {
	f, err := src.AsNumber()
	if err != nil {
		return err
	}
	v.value = f
	return nil
}

func (v *valueVar) Call([]eval.Symbol) (eval.Symbol, error) {
	return nil, eval.Error(eval.NotCallable, issue.H{`name`: v.describe()})
}

func (v *valueVar) Clone() eval.Symbol {
	return &valueVar{symbol{name: v.name, desc: v.desc, builtin: v.builtin}, v.value}
}

func (v *valueVar) Write(w io.Writer, prefix string, commentColumn int) {
	writeVarLine(w, prefix, keywordValue, v.name, formatNumber(v.value), v.IsLocal(), commentColumn, v.desc)
}

func (v *stringVar) IsString() bool {
	return true
}

func (v *stringVar) AsNumber() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.value), 64)
	if err != nil {
		return 0, eval.Error(eval.NotANumber, issue.H{`name`: v.describe()})
	}
	return f, nil
}

func (v *stringVar) AsString() (string, error) {
	return v.value, nil
}

func (v *stringVar) CopyValue(src eval.View) error {
	s, err := src.AsString()
	if err != nil {
		return err
	}
	v.value = s
	return nil
}

func (v *stringVar) Call([]eval.Symbol) (eval.Symbol, error) {
	return nil, eval.Error(eval.NotCallable, issue.H{`name`: v.describe()})
}

func (v *stringVar) Clone() eval.Symbol {
	return &stringVar{symbol{name: v.name, desc: v.desc, builtin: v.builtin}, v.value}
}

func (v *stringVar) Write(w io.Writer, prefix string, commentColumn int) {
	b := &strings.Builder{}
	utils.CurioQuote(b, v.value)
	writeVarLine(w, prefix, keywordString, v.name, b.String(), v.IsLocal(), commentColumn, v.desc)
}

// writeVarLine renders one variable declaration or assignment statement.
// Local symbols carry their declaring keyword; host backed ones are plain
// assignments since the host declares them before any script runs.
func writeVarLine(w io.Writer, prefix, keyword, name, value string, local bool, commentColumn int, desc string) {
	line := prefix
	if local {
		line += keyword + ` `
	}
	line += name + ` = ` + value + `;`
	io.WriteString(w, line)
	writeDesc(w, desc, commentColumn, len(line))
}
