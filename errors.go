// errors.go — the runtime error taxonomy.
//
// Every failure the evaluator or a builtin can produce is an *EvalError
// carrying one of the ErrorKind constants. Errors are plain values returned
// up the recursive walk; the first one aborts the evaluation and nothing is
// swallowed or retried on the way out.

package arbor

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a runtime failure.
type ErrorKind int

const (
	ErrArityMismatch    ErrorKind = iota // wrong argument count for a builtin or closure
	ErrTypeMismatch                      // operand of the wrong value kind
	ErrDivisionByZero                    // div/mod with a zero divisor
	ErrIndexOutOfRange                   // array index negative or past the end
	ErrEmptyCollection                   // head/tail/last/mean/... on an empty array
	ErrUnboundVariable                   // assignment to a name never defined
	ErrNoMatchingClause                  // cond fell through every clause
	ErrNotAProcedure                     // application of a non-callable value
	ErrStructural                        // malformed tree: stray Clause/Parameters etc.
)

var errorKindNames = [...]string{
	ErrArityMismatch:    "arity mismatch",
	ErrTypeMismatch:     "type mismatch",
	ErrDivisionByZero:   "division by zero",
	ErrIndexOutOfRange:  "index out of range",
	ErrEmptyCollection:  "empty collection",
	ErrUnboundVariable:  "unbound variable",
	ErrNoMatchingClause: "no matching clause",
	ErrNotAProcedure:    "not a procedure",
	ErrStructural:       "structural error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown error"
}

// EvalError is a runtime failure with its classification.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// KindOf extracts the ErrorKind from err if it is (or wraps) an *EvalError.
func KindOf(err error) (ErrorKind, bool) {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return 0, false
}

func evalErrf(kind ErrorKind, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func errArity(name string, want, got int) error {
	return evalErrf(ErrArityMismatch, "%s expects %d argument(s), got %d", name, want, got)
}

func errType(name, want string, got Value) error {
	return evalErrf(ErrTypeMismatch, "%s expects %s, got %s", name, want, got.Tag.typeName())
}

func errUnbound(name string) error {
	return evalErrf(ErrUnboundVariable, "undefined variable: %s", name)
}

func errNotProc(v Value) error {
	return evalErrf(ErrNotAProcedure, "cannot apply %s value %s", v.Tag.typeName(), FormatValue(v))
}

func (t ValueTag) typeName() string {
	switch t {
	case VTInt:
		return "Number"
	case VTBool:
		return "Bool"
	case VTStr:
		return "String"
	case VTArray:
		return "Array"
	case VTBuiltin:
		return "Builtin"
	case VTClosure:
		return "Closure"
	default:
		return "unknown"
	}
}
