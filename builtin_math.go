// builtin_math.go
//
// Builtins surfaced:
//   arithmetic: add, sub, mul, div, pow, mod, abs, max, min, fact
//   comparison: eq, <, >, <=, >=, zero?
//
// Conventions:
//   - Every builtin has a fixed arity; the evaluator enforces it before the
//     implementation runs.
//   - Operands must be Numbers; anything else is a TypeMismatch.
//   - div/mod fail with DivisionByZero on a zero divisor; fact fails for
//     negative input; pow fails for a negative exponent.
package arbor

func registerMathBuiltins(ip *Interpreter) {
	// add(a, b) -> Number
	ip.RegisterBuiltin("add", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("add", args)
		if err != nil {
			return Value{}, err
		}
		return Int(a + b), nil
	})

	// sub(a, b) -> Number
	ip.RegisterBuiltin("sub", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("sub", args)
		if err != nil {
			return Value{}, err
		}
		return Int(a - b), nil
	})

	// mul(a, b) -> Number
	ip.RegisterBuiltin("mul", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("mul", args)
		if err != nil {
			return Value{}, err
		}
		return Int(a * b), nil
	})

	// div(a, b) -> Number (integer division)
	ip.RegisterBuiltin("div", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("div", args)
		if err != nil {
			return Value{}, err
		}
		if b == 0 {
			return Value{}, evalErrf(ErrDivisionByZero, "div by zero")
		}
		return Int(a / b), nil
	})

	// pow(a, b) -> Number; b must be non-negative
	ip.RegisterBuiltin("pow", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("pow", args)
		if err != nil {
			return Value{}, err
		}
		if b < 0 {
			return Value{}, evalErrf(ErrTypeMismatch, "pow expects a non-negative exponent, got %d", b)
		}
		result := int64(1)
		for k := int64(0); k < b; k++ {
			result *= a
		}
		return Int(result), nil
	})

	// mod(a, b) -> Number
	ip.RegisterBuiltin("mod", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("mod", args)
		if err != nil {
			return Value{}, err
		}
		if b == 0 {
			return Value{}, evalErrf(ErrDivisionByZero, "mod by zero")
		}
		return Int(a % b), nil
	})

	// abs(a) -> Number
	ip.RegisterBuiltin("abs", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, err := oneInt("abs", args)
		if err != nil {
			return Value{}, err
		}
		if n < 0 {
			n = -n
		}
		return Int(n), nil
	})

	// max(a, b) -> Number
	ip.RegisterBuiltin("max", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("max", args)
		if err != nil {
			return Value{}, err
		}
		if a > b {
			return Int(a), nil
		}
		return Int(b), nil
	})

	// min(a, b) -> Number
	ip.RegisterBuiltin("min", 2, func(_ *Interpreter, args []Value) (Value, error) {
		a, b, err := twoInts("min", args)
		if err != nil {
			return Value{}, err
		}
		if a < b {
			return Int(a), nil
		}
		return Int(b), nil
	})

	// fact(n) -> Number; undefined for negative n
	ip.RegisterBuiltin("fact", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, err := oneInt("fact", args)
		if err != nil {
			return Value{}, err
		}
		if n < 0 {
			return Value{}, evalErrf(ErrTypeMismatch, "fact of a negative number is undefined")
		}
		result := int64(1)
		for k := int64(2); k <= n; k++ {
			result *= k
		}
		return Int(result), nil
	})

	// eq / < / > / <= / >= (a, b) -> Bool
	compare := func(name string, f func(a, b int64) bool) {
		ip.RegisterBuiltin(name, 2, func(_ *Interpreter, args []Value) (Value, error) {
			a, b, err := twoInts(name, args)
			if err != nil {
				return Value{}, err
			}
			return Bool(f(a, b)), nil
		})
	}
	compare("eq", func(a, b int64) bool { return a == b })
	compare("<", func(a, b int64) bool { return a < b })
	compare(">", func(a, b int64) bool { return a > b })
	compare("<=", func(a, b int64) bool { return a <= b })
	compare(">=", func(a, b int64) bool { return a >= b })

	// zero?(n) -> Bool
	ip.RegisterBuiltin("zero?", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, err := oneInt("zero?", args)
		if err != nil {
			return Value{}, err
		}
		return Bool(n == 0), nil
	})
}

func oneInt(name string, args []Value) (int64, error) {
	if args[0].Tag != VTInt {
		return 0, errType(name, "a Number", args[0])
	}
	return args[0].Data.(int64), nil
}

func twoInts(name string, args []Value) (int64, int64, error) {
	if args[0].Tag != VTInt {
		return 0, 0, errType(name, "a Number", args[0])
	}
	if args[1].Tag != VTInt {
		return 0, 0, errType(name, "a Number", args[1])
	}
	return args[0].Data.(int64), args[1].Data.(int64), nil
}
