// eval.go — the recursive evaluator.
//
// Single depth-first walk over the expression tree. Every case returns either
// a Value or an *EvalError; the first error aborts the walk. Recursion depth
// is bounded by the native stack — there is no tail-call elimination, and
// deeply recursive user programs are expected to exhaust it.

package arbor

func (ip *Interpreter) eval(e Expr, env *Env) (Value, error) {
	switch e.Kind {
	case KNumber:
		return Int(e.Num), nil

	case KBool:
		return Bool(e.Flag), nil

	case KString:
		return Str(e.Text), nil

	case KIdentifier:
		return ip.resolveIdentifier(e.Text, env), nil

	case KApplication:
		return ip.evalApplication(e, env)

	case KBlock:
		return ip.evalBlock(e, env)

	case KCond:
		return ip.evalCond(e, env)

	case KLambda:
		return ip.evalLambda(e, env)

	case KLet:
		return ip.evalLet(e, env)

	case KAssignment:
		return ip.evalAssignment(e, env)

	case KClause:
		return Value{}, evalErrf(ErrStructural, "Clause outside a Cond")

	case KParameters:
		return Value{}, evalErrf(ErrStructural, "Parameters outside a Lambda")

	default:
		return Value{}, evalErrf(ErrStructural, "unknown expression kind %d", e.Kind)
	}
}

// resolveIdentifier implements the permissive reference policy: the scope
// chain first, then the builtin table, and finally the name itself as a
// String value. Resolving a lookup miss against the builtin table here (as a
// tagged Builtin value, not by rendered text) keeps user strings that happen
// to spell a builtin name from ever being callable.
func (ip *Interpreter) resolveIdentifier(name string, env *Env) Value {
	if v, ok := env.Get(name); ok {
		return v
	}
	if b, ok := ip.builtins[name]; ok {
		return b
	}
	return Str(name)
}

// evalApplication evaluates the operator, enforces arity against the count of
// argument expressions, then evaluates the arguments left to right in the
// caller's environment and dispatches.
func (ip *Interpreter) evalApplication(e Expr, env *Env) (Value, error) {
	if len(e.List) == 0 {
		return Value{}, evalErrf(ErrStructural, "empty Application")
	}
	op, err := ip.eval(e.List[0], env)
	if err != nil {
		return Value{}, err
	}
	argExprs := e.List[1:]

	switch op.Tag {
	case VTBuiltin:
		b := op.Data.(*Builtin)
		if b.Arity != Variadic && len(argExprs) != b.Arity {
			return Value{}, errArity(b.Name, b.Arity, len(argExprs))
		}
		args, err := ip.evalArgs(argExprs, env)
		if err != nil {
			return Value{}, err
		}
		return b.Impl(ip, args)

	case VTClosure:
		c := op.Data.(*Closure)
		if len(argExprs) != len(c.Params) {
			return Value{}, errArity("closure", len(c.Params), len(argExprs))
		}
		args, err := ip.evalArgs(argExprs, env)
		if err != nil {
			return Value{}, err
		}
		return ip.callClosure(c, args)

	default:
		return Value{}, errNotProc(op)
	}
}

func (ip *Interpreter) evalArgs(exprs []Expr, env *Env) ([]Value, error) {
	args := make([]Value, len(exprs))
	for idx, a := range exprs {
		v, err := ip.eval(a, env)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return args, nil
}

// callClosure binds the parameters in a fresh child of the closure's captured
// environment — not the caller's — and evaluates the body there. The caller
// has already checked the argument count.
func (ip *Interpreter) callClosure(c *Closure, args []Value) (Value, error) {
	frame := NewEnv(c.Env)
	for idx, name := range c.Params {
		frame.Define(name, args[idx])
	}
	return ip.eval(c.Body, frame)
}

// evalBlock runs each expression in a fresh child scope and yields the last
// result. An empty block yields false.
func (ip *Interpreter) evalBlock(e Expr, env *Env) (Value, error) {
	scope := NewEnv(env)
	result := False
	for _, sub := range e.List {
		v, err := ip.eval(sub, scope)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// evalCond tries each clause in order. Truthiness is binary: only an explicit
// Bool(true) selects a clause; any other condition result counts as false.
func (ip *Interpreter) evalCond(e Expr, env *Env) (Value, error) {
	for _, clause := range e.List {
		if clause.Kind != KClause {
			return Value{}, evalErrf(ErrStructural, "Cond child must be a Clause, got %s", clause.Kind)
		}
		if len(clause.List) != 2 {
			return Value{}, evalErrf(ErrStructural, "Clause must have exactly 2 expressions, got %d", len(clause.List))
		}
		cond, err := ip.eval(clause.List[0], env)
		if err != nil {
			return Value{}, err
		}
		if cond.Tag == VTBool && cond.Data.(bool) {
			return ip.eval(clause.List[1], env)
		}
	}
	return Value{}, evalErrf(ErrNoMatchingClause, "no clause condition evaluated to true")
}

// evalLambda validates the parameter list and captures the current
// environment by reference, so assignments made after the closure is built
// remain visible inside it.
func (ip *Interpreter) evalLambda(e Expr, env *Env) (Value, error) {
	if len(e.List) != 2 {
		return Value{}, evalErrf(ErrStructural, "Lambda must have exactly 2 expressions, got %d", len(e.List))
	}
	params := e.List[0]
	if params.Kind != KParameters {
		return Value{}, evalErrf(ErrStructural, "Lambda first child must be Parameters, got %s", params.Kind)
	}
	names := make([]string, len(params.List))
	for idx, p := range params.List {
		if p.Kind != KIdentifier {
			return Value{}, evalErrf(ErrStructural, "Lambda parameter must be an Identifier, got %s", p.Kind)
		}
		names[idx] = p.Text
	}
	return ClosureVal(&Closure{Params: names, Body: e.List[1], Env: env}), nil
}

// evalLet evaluates the value in the current environment (the new name is not
// visible to it), defines the binding in the current scope, and evaluates the
// body there.
func (ip *Interpreter) evalLet(e Expr, env *Env) (Value, error) {
	if len(e.List) != 3 {
		return Value{}, evalErrf(ErrStructural, "Let must have exactly 3 expressions, got %d", len(e.List))
	}
	name := e.List[0]
	if name.Kind != KIdentifier {
		return Value{}, evalErrf(ErrStructural, "Let target must be an Identifier, got %s", name.Kind)
	}
	v, err := ip.eval(e.List[1], env)
	if err != nil {
		return Value{}, err
	}
	env.Define(name.Text, v)
	return ip.eval(e.List[2], env)
}

// evalAssignment mutates the nearest binding of the name; assignment is an
// expression and yields the assigned value.
func (ip *Interpreter) evalAssignment(e Expr, env *Env) (Value, error) {
	if len(e.List) != 2 {
		return Value{}, evalErrf(ErrStructural, "Assignment must have exactly 2 expressions, got %d", len(e.List))
	}
	name := e.List[0]
	if name.Kind != KIdentifier {
		return Value{}, evalErrf(ErrStructural, "Assignment target must be an Identifier, got %s", name.Kind)
	}
	v, err := ip.eval(e.List[1], env)
	if err != nil {
		return Value{}, err
	}
	if err := env.Set(name.Text, v); err != nil {
		return Value{}, err
	}
	return v, nil
}
