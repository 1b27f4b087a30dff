package eval

import (
	"github.com/lyraproj/issue/issue"
)

const (
	DuplicateDeclaration = `EVAL_DUPLICATE_DECLARATION`
	UnresolvedReference  = `EVAL_UNRESOLVED_REFERENCE`
	NotANumber           = `EVAL_NOT_A_NUMBER`
	NotAString           = `EVAL_NOT_A_STRING`
	NotWritable          = `EVAL_NOT_WRITABLE`
	NotCallable          = `EVAL_NOT_CALLABLE`
	IllegalArguments     = `EVAL_ILLEGAL_ARGUMENTS`
	DoubleFree           = `EVAL_DOUBLE_FREE`
	TypeVersionMismatch  = `EVAL_TYPE_VERSION_MISMATCH`
	DuplicateType        = `EVAL_DUPLICATE_TYPE`
	UnknownType          = `EVAL_UNKNOWN_TYPE`
)

func init() {
	issue.Hard(DuplicateDeclaration, `'%{name}' is already declared in scope '%{scope}'`)

	issue.Hard(UnresolvedReference, `reference to undeclared symbol '%{name}'`)

	issue.Hard(NotANumber, `'%{name}' has no numeric representation`)

	issue.Hard(NotAString, `'%{name}' has no string representation`)

	issue.Hard(NotWritable, `'%{name}' cannot be used as an assignment target`)

	issue.Hard(NotCallable, `'%{name}' is not a function`)

	issue.Hard(IllegalArguments, `error calling '%{name}': %{message}`)

	issue.Hard(DoubleFree, `attempt to free symbol '%{name}' more than once`)

	issue.Hard(TypeVersionMismatch, `host type '%{name}': %{detail}`)

	issue.Hard(DuplicateType, `host type '%{name}' is already registered`)

	issue.Hard(UnknownType, `reference to unregistered host type '%{name}'`)
}
