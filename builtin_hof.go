// builtin_hof.go
//
// Builtins surfaced:
//   map(f, arr)        — f: Closure/1; collects the results positionally
//   filter(f, arr)     — f: Closure/1; keeps elements whose result is true
//   fold(f, seed, arr) — f: Closure/2 taking (accumulator, element)
//
// Conventions:
//   - The callback must be a user Closure with the stated parameter count;
//     a wrong count is an ArityMismatch, any other value a TypeMismatch.
//   - Each element invocation binds the parameter(s) in a fresh child of the
//     closure's captured environment, so callbacks see their defining scope,
//     not the caller's.
package arbor

func registerHofBuiltins(ip *Interpreter) {
	// map(f, arr) -> fresh Array of f(element)
	ip.RegisterBuiltin("map", 2, func(ip *Interpreter, args []Value) (Value, error) {
		c, err := closureArg("map", args[0], 1)
		if err != nil {
			return Value{}, err
		}
		xs, err := arrayArg("map", args[1])
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, len(xs))
		for idx, elem := range xs {
			v, err := ip.callClosure(c, []Value{elem})
			if err != nil {
				return Value{}, err
			}
			out[idx] = v
		}
		return Arr(out), nil
	})

	// filter(f, arr) -> fresh Array of elements where f(element) is true
	ip.RegisterBuiltin("filter", 2, func(ip *Interpreter, args []Value) (Value, error) {
		c, err := closureArg("filter", args[0], 1)
		if err != nil {
			return Value{}, err
		}
		xs, err := arrayArg("filter", args[1])
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, 0, len(xs))
		for _, elem := range xs {
			v, err := ip.callClosure(c, []Value{elem})
			if err != nil {
				return Value{}, err
			}
			if v.Tag == VTBool && v.Data.(bool) {
				out = append(out, elem)
			}
		}
		return Arr(out), nil
	})

	// fold(f, seed, arr) -> accumulator threaded left to right
	ip.RegisterBuiltin("fold", 3, func(ip *Interpreter, args []Value) (Value, error) {
		c, err := closureArg("fold", args[0], 2)
		if err != nil {
			return Value{}, err
		}
		xs, err := arrayArg("fold", args[2])
		if err != nil {
			return Value{}, err
		}
		acc := args[1]
		for _, elem := range xs {
			acc, err = ip.callClosure(c, []Value{acc, elem})
			if err != nil {
				return Value{}, err
			}
		}
		return acc, nil
	})
}

func closureArg(name string, v Value, arity int) (*Closure, error) {
	if v.Tag != VTClosure {
		return nil, errType(name, "a Closure", v)
	}
	c := v.Data.(*Closure)
	if len(c.Params) != arity {
		return nil, evalErrf(ErrArityMismatch, "%s expects a closure of %d parameter(s), got %d", name, arity, len(c.Params))
	}
	return c, nil
}
