// interpreter.go — public API surface for the Arbor runtime.
//
// OVERVIEW
// ========
// Arbor evaluates a single expression tree against a lexically scoped
// environment and produces a value. Programs arrive already parsed — either
// built with the constructors in expr.go, or decoded from an external tagged
// document (json.go / yaml.go). There is no source grammar, no tokenizer and
// no bytecode: evaluation is one depth-first recursive walk (eval.go).
//
// This file holds the stable surface a host needs:
//   • The runtime value model (`Value`, `ValueTag`, constructors Int/Bool/Str/Arr).
//   • Procedure values: `Builtin` (native, fixed arity) and `Closure`
//     (parameter names + unevaluated body + captured environment).
//   • Environments (`Env`) with lexical parent chaining.
//   • The `Interpreter` with its entry points:
//       - Eval            — run in a fresh child of Global (ephemeral),
//       - EvalPersistent  — run in Global itself (REPL-style),
//       - EvalIn          — run in an explicit environment,
//       - Apply           — invoke a procedure value over evaluated arguments,
//       - RegisterBuiltin / LookupBuiltin / BuiltinNames.
//
// EXECUTION & SCOPING SEMANTICS
// -----------------------------
// Environments form a lexical chain via `parent`. `Define` binds in the
// current frame (shadowing any outer binding); `Set` mutates the nearest
// existing binding walking outward and fails if the name was never defined.
// Frames are shared by pointer: a closure capturing a frame observes later
// mutations made through `Set` — the classic mutable-box discipline. A frame
// stays alive exactly as long as any closure, child frame or active call
// still references it; the Go runtime reclaims it afterwards. Scopes only
// ever point outward to their creator, so no reference cycle can arise.
//
// Builtins live in a separate flat table on the Interpreter, populated once
// during construction and read-only afterwards. Variable lookup never
// consults it; identifier resolution falls back to it only when no scope
// binds the name (see eval.go).
//
// ERRORS
// ------
// All failures are `*EvalError` values (errors.go) returned up the recursive
// walk; the first error aborts the evaluation. Nothing panics across this
// surface and nothing is logged; the process boundary (cmd/arbor) is where
// errors become user-visible.
//
// CONCURRENCY
// -----------
// One evaluation is strictly single-threaded. Interpreters are not safe for
// concurrent use; create one per goroutine if needed.

package arbor

import (
	"io"
	"os"
	"sort"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTInt     ValueTag = iota // int64
	VTBool                    // bool
	VTStr                     // string
	VTArray                   // []Value
	VTBuiltin                 // *Builtin (native procedure, fixed arity)
	VTClosure                 // *Closure (user procedure + captured env)
)

// Value is the universal runtime carrier. Tag determines which Go type Data
// holds (see ValueTag). Values are immutable: array builtins return fresh
// arrays rather than mutating their input, and the only mutable cells are
// environment bindings.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Primitive constructors.
func Int(n int64) Value    { return Value{Tag: VTInt, Data: n} }
func Bool(b bool) Value    { return Value{Tag: VTBool, Data: b} }
func Str(s string) Value   { return Value{Tag: VTStr, Data: s} }
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

// False is the conventional "nothing useful" result: empty blocks, print and
// wait all evaluate to it.
var False = Value{Tag: VTBool, Data: false}

// Variadic marks a builtin that accepts any number of arguments.
const Variadic = -1

// BuiltinImpl is the implementation signature for native procedures. Arity is
// enforced by the evaluator before the implementation runs, so fixed-arity
// implementations may index args directly.
type BuiltinImpl func(ip *Interpreter, args []Value) (Value, error)

// Builtin is a native procedure with a declared arity (or Variadic).
type Builtin struct {
	Name  string
	Arity int
	Impl  BuiltinImpl
}

// BuiltinVal wraps a Builtin into a Value (Tag=VTBuiltin).
func BuiltinVal(b *Builtin) Value { return Value{Tag: VTBuiltin, Data: b} }

// Closure pairs unevaluated code with the environment active at its creation.
// Env is held by pointer: assignments to captured variables made after the
// closure was built are visible inside later invocations.
type Closure struct {
	Params []string
	Body   Expr
	Env    *Env
}

// ClosureVal wraps a Closure into a Value (Tag=VTClosure).
func ClosureVal(c *Closure) Value { return Value{Tag: VTClosure, Data: c} }

// Env is one lexical frame with a parent link. Lookups walk parent-ward and
// stop at the first match.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env { return &Env{parent: parent, table: make(map[string]Value)} }

// Define binds name in the current frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Set mutates the nearest existing binding of name, walking outward. It never
// creates a binding; assigning a name that was never defined is an
// UnboundVariable error.
func (e *Env) Set(name string, v Value) error {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.table[name]; ok {
			f.table[name] = v
			return nil
		}
	}
	return errUnbound(name)
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Interpreter evaluates Arbor expression trees.
//
// Public fields:
//   - Global — the persistent program environment, pre-populated with the
//     conventional numeric bindings i=1, v=5, x=10.
//   - Stdout — sink for the print builtin (defaults to os.Stdout).
type Interpreter struct {
	Global *Env
	Stdout io.Writer

	builtins map[string]Value
}

// NewInterpreter returns a ready-to-use interpreter with the standard builtin
// library installed and the starting bindings in Global.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Global:   NewEnv(nil),
		Stdout:   os.Stdout,
		builtins: make(map[string]Value),
	}

	// Roman numerals: the observable starting state.
	ip.Global.Define("i", Int(1))
	ip.Global.Define("v", Int(5))
	ip.Global.Define("x", Int(10))

	registerMathBuiltins(ip)
	registerArrayBuiltins(ip)
	registerHofBuiltins(ip)
	registerIOBuiltins(ip)

	return ip
}

// RegisterBuiltin installs a native procedure under name. Intended for
// construction time; the table is read-only once evaluation starts.
func (ip *Interpreter) RegisterBuiltin(name string, arity int, impl BuiltinImpl) {
	ip.builtins[name] = BuiltinVal(&Builtin{Name: name, Arity: arity, Impl: impl})
}

// LookupBuiltin consults the flat builtin table. It is independent of the
// scope chain and is never shadowed by user bindings.
func (ip *Interpreter) LookupBuiltin(name string) (Value, bool) {
	v, ok := ip.builtins[name]
	return v, ok
}

// BuiltinNames returns the installed builtin names, sorted.
func (ip *Interpreter) BuiltinNames() []string {
	names := make([]string, 0, len(ip.builtins))
	for name := range ip.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates expr in a fresh child of Global. Bindings introduced by the
// program land in the throwaway child; Global changes only through explicit
// assignment to names it already owns.
func (ip *Interpreter) Eval(expr Expr) (Value, error) {
	return ip.eval(expr, NewEnv(ip.Global))
}

// EvalPersistent evaluates expr in Global itself, so let-bindings persist
// across calls. This is what the REPL uses.
func (ip *Interpreter) EvalPersistent(expr Expr) (Value, error) {
	return ip.eval(expr, ip.Global)
}

// EvalIn evaluates expr in an explicit environment, for hosts that manage
// scoping themselves.
func (ip *Interpreter) EvalIn(expr Expr, env *Env) (Value, error) {
	return ip.eval(expr, env)
}

// Apply invokes a procedure value over already-evaluated arguments. Closures
// run in a fresh child of their captured environment; builtins have their
// declared arity enforced first. Applying any other value kind fails with
// NotAProcedure.
func (ip *Interpreter) Apply(fn Value, args []Value) (Value, error) {
	switch fn.Tag {
	case VTBuiltin:
		b := fn.Data.(*Builtin)
		if b.Arity != Variadic && len(args) != b.Arity {
			return Value{}, errArity(b.Name, b.Arity, len(args))
		}
		return b.Impl(ip, args)
	case VTClosure:
		c := fn.Data.(*Closure)
		if len(args) != len(c.Params) {
			return Value{}, errArity("closure", len(c.Params), len(args))
		}
		return ip.callClosure(c, args)
	default:
		return Value{}, errNotProc(fn)
	}
}
