package errors

import (
	"fmt"
)

type (
	// ArgumentError describes why a function symbol rejected its argument
	// list. The function symbol converts these into reported issues that
	// carry the script location of the offending call.
	ArgumentError interface {
		FuncName() string
		Error() string
	}

	GenericError string

	ArgumentsError struct {
		funcName string
		error    string
	}

	IllegalArgument struct {
		funcName string
		error    string
		index    int
	}

	IllegalArgumentType struct {
		funcName string
		expected string
		actual   string
		index    int
	}

	IllegalArgumentCount struct {
		funcName string
		expected int
		actual   int
	}
)

func (e GenericError) Error() string {
	return string(e)
}

func (e *ArgumentsError) FuncName() string {
	return e.funcName
}

func (e *ArgumentsError) Error() string {
	return fmt.Sprintf("%s: %s", e.funcName, e.error)
}

func (e *IllegalArgument) FuncName() string {
	return e.funcName
}

func (e *IllegalArgument) Error() string {
	return fmt.Sprintf("%s argument %d: %s", e.funcName, e.index+1, e.error)
}

func (e *IllegalArgument) Index() int {
	return e.index
}

func (e *IllegalArgumentType) FuncName() string {
	return e.funcName
}

func (e *IllegalArgumentType) Index() int {
	return e.index
}

func (e *IllegalArgumentType) Expected() string {
	return e.expected
}

func (e *IllegalArgumentType) Actual() string {
	return e.actual
}

func (e *IllegalArgumentType) Error() string {
	return fmt.Sprintf("%s expected argument %d to be %s, got %s", e.funcName, e.index+1, e.expected, e.actual)
}

func (e *IllegalArgumentCount) FuncName() string {
	return e.funcName
}

func (e *IllegalArgumentCount) Error() string {
	return fmt.Sprintf("%s expected argument count to be %d, got %d", e.funcName, e.expected, e.actual)
}

func (e *IllegalArgumentCount) Expected() int {
	return e.expected
}

func (e *IllegalArgumentCount) Actual() int {
	return e.actual
}

// NewArgumentsError is a general error with the arguments, such as a failure
// inside the native callable itself
func NewArgumentsError(name string, error string) ArgumentError {
	return &ArgumentsError{name, error}
}

func NewIllegalArgument(name string, index int, error string) ArgumentError {
	return &IllegalArgument{name, error, index}
}

func NewIllegalArgumentType(name string, index int, expected string, actual string) ArgumentError {
	return &IllegalArgumentType{name, expected, actual, index}
}

func NewIllegalArgumentCount(name string, expected int, actual int) ArgumentError {
	return &IllegalArgumentCount{name, expected, actual}
}
