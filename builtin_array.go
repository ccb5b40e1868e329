// builtin_array.go
//
// Builtins surfaced:
//   construction: intArray, stringArray (variadic)
//   access:       len, get, empty?, head, tail, last
//   copy-mutate:  set, append, remove, rev, sort (all return a fresh array)
//   aggregation:  sum, product, median, mean, maxArray, minArray
//
// Conventions:
//   - Array-returning builtins never alias their input: results are fresh
//     slices, so the value a caller bound to a variable is never altered.
//   - get/set/remove fail with IndexOutOfRange for a negative index or one
//     past the end; head/tail/last and the non-trivial aggregations fail with
//     EmptyCollection on an empty array.
//   - sort and the aggregations require Number elements.
package arbor

import "sort"

func registerArrayBuiltins(ip *Interpreter) {
	// intArray(n...) -> Array of Numbers
	ip.RegisterBuiltin("intArray", Variadic, func(_ *Interpreter, args []Value) (Value, error) {
		out := make([]Value, len(args))
		for idx, a := range args {
			if a.Tag != VTInt {
				return Value{}, errType("intArray", "Number elements", a)
			}
			out[idx] = a
		}
		return Arr(out), nil
	})

	// stringArray(s...) -> Array of Strings
	ip.RegisterBuiltin("stringArray", Variadic, func(_ *Interpreter, args []Value) (Value, error) {
		out := make([]Value, len(args))
		for idx, a := range args {
			if a.Tag != VTStr {
				return Value{}, errType("stringArray", "String elements", a)
			}
			out[idx] = a
		}
		return Arr(out), nil
	})

	// len(arr) -> Number
	ip.RegisterBuiltin("len", 1, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := arrayArg("len", args[0])
		if err != nil {
			return Value{}, err
		}
		return Int(int64(len(xs))), nil
	})

	// get(arr, i) -> element
	ip.RegisterBuiltin("get", 2, func(_ *Interpreter, args []Value) (Value, error) {
		xs, idx, err := arrayIndexArgs("get", args[0], args[1])
		if err != nil {
			return Value{}, err
		}
		return xs[idx], nil
	})

	// set(arr, i, v) -> fresh Array with element i replaced
	ip.RegisterBuiltin("set", 3, func(_ *Interpreter, args []Value) (Value, error) {
		xs, idx, err := arrayIndexArgs("set", args[0], args[1])
		if err != nil {
			return Value{}, err
		}
		out := append([]Value(nil), xs...)
		out[idx] = args[2]
		return Arr(out), nil
	})

	// append(arr, v) -> fresh Array with v at the end
	ip.RegisterBuiltin("append", 2, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := arrayArg("append", args[0])
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, 0, len(xs)+1)
		out = append(out, xs...)
		out = append(out, args[1])
		return Arr(out), nil
	})

	// remove(arr, i) -> fresh Array without element i
	ip.RegisterBuiltin("remove", 2, func(_ *Interpreter, args []Value) (Value, error) {
		xs, idx, err := arrayIndexArgs("remove", args[0], args[1])
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, 0, len(xs)-1)
		out = append(out, xs[:idx]...)
		out = append(out, xs[idx+1:]...)
		return Arr(out), nil
	})

	// rev(arr) -> fresh reversed Array
	ip.RegisterBuiltin("rev", 1, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := arrayArg("rev", args[0])
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, len(xs))
		for idx, elem := range xs {
			out[len(xs)-1-idx] = elem
		}
		return Arr(out), nil
	})

	// sort(arr) -> fresh ascending Array; Number elements only
	ip.RegisterBuiltin("sort", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := numberElems("sort", args[0])
		if err != nil {
			return Value{}, err
		}
		sort.Slice(ns, func(a, b int) bool { return ns[a] < ns[b] })
		out := make([]Value, len(ns))
		for idx, n := range ns {
			out[idx] = Int(n)
		}
		return Arr(out), nil
	})

	// empty?(arr) -> Bool
	ip.RegisterBuiltin("empty?", 1, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := arrayArg("empty?", args[0])
		if err != nil {
			return Value{}, err
		}
		return Bool(len(xs) == 0), nil
	})

	// head(arr) -> first element
	ip.RegisterBuiltin("head", 1, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := nonEmptyArrayArg("head", args[0])
		if err != nil {
			return Value{}, err
		}
		return xs[0], nil
	})

	// tail(arr) -> fresh Array without the first element
	ip.RegisterBuiltin("tail", 1, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := nonEmptyArrayArg("tail", args[0])
		if err != nil {
			return Value{}, err
		}
		return Arr(append([]Value(nil), xs[1:]...)), nil
	})

	// last(arr) -> last element
	ip.RegisterBuiltin("last", 1, func(_ *Interpreter, args []Value) (Value, error) {
		xs, err := nonEmptyArrayArg("last", args[0])
		if err != nil {
			return Value{}, err
		}
		return xs[len(xs)-1], nil
	})

	// sum(arr) -> Number (0 for an empty array)
	ip.RegisterBuiltin("sum", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := numberElems("sum", args[0])
		if err != nil {
			return Value{}, err
		}
		total := int64(0)
		for _, n := range ns {
			total += n
		}
		return Int(total), nil
	})

	// product(arr) -> Number (1 for an empty array)
	ip.RegisterBuiltin("product", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := numberElems("product", args[0])
		if err != nil {
			return Value{}, err
		}
		total := int64(1)
		for _, n := range ns {
			total *= n
		}
		return Int(total), nil
	})

	// median(arr) -> Number; even lengths average the two middle values
	ip.RegisterBuiltin("median", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := nonEmptyNumberElems("median", args[0])
		if err != nil {
			return Value{}, err
		}
		sort.Slice(ns, func(a, b int) bool { return ns[a] < ns[b] })
		mid := len(ns) / 2
		if len(ns)%2 == 0 {
			return Int((ns[mid-1] + ns[mid]) / 2), nil
		}
		return Int(ns[mid]), nil
	})

	// mean(arr) -> Number (truncating division)
	ip.RegisterBuiltin("mean", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := nonEmptyNumberElems("mean", args[0])
		if err != nil {
			return Value{}, err
		}
		total := int64(0)
		for _, n := range ns {
			total += n
		}
		return Int(total / int64(len(ns))), nil
	})

	// maxArray(arr) -> Number
	ip.RegisterBuiltin("maxArray", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := nonEmptyNumberElems("maxArray", args[0])
		if err != nil {
			return Value{}, err
		}
		best := ns[0]
		for _, n := range ns[1:] {
			if n > best {
				best = n
			}
		}
		return Int(best), nil
	})

	// minArray(arr) -> Number
	ip.RegisterBuiltin("minArray", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ns, err := nonEmptyNumberElems("minArray", args[0])
		if err != nil {
			return Value{}, err
		}
		best := ns[0]
		for _, n := range ns[1:] {
			if n < best {
				best = n
			}
		}
		return Int(best), nil
	})
}

func arrayArg(name string, v Value) ([]Value, error) {
	if v.Tag != VTArray {
		return nil, errType(name, "an Array", v)
	}
	return v.Data.([]Value), nil
}

func nonEmptyArrayArg(name string, v Value) ([]Value, error) {
	xs, err := arrayArg(name, v)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, evalErrf(ErrEmptyCollection, "%s of an empty array", name)
	}
	return xs, nil
}

func arrayIndexArgs(name string, arr, idx Value) ([]Value, int, error) {
	xs, err := arrayArg(name, arr)
	if err != nil {
		return nil, 0, err
	}
	if idx.Tag != VTInt {
		return nil, 0, errType(name, "a Number index", idx)
	}
	n := idx.Data.(int64)
	if n < 0 || n >= int64(len(xs)) {
		return nil, 0, evalErrf(ErrIndexOutOfRange, "%s index %d out of range for length %d", name, n, len(xs))
	}
	return xs, int(n), nil
}

// numberElems copies the Number elements of an array value into a fresh
// int64 slice, so callers may sort or reduce without touching the original.
func numberElems(name string, v Value) ([]int64, error) {
	xs, err := arrayArg(name, v)
	if err != nil {
		return nil, err
	}
	ns := make([]int64, len(xs))
	for idx, elem := range xs {
		if elem.Tag != VTInt {
			return nil, errType(name, "Number elements", elem)
		}
		ns[idx] = elem.Data.(int64)
	}
	return ns, nil
}

func nonEmptyNumberElems(name string, v Value) ([]int64, error) {
	ns, err := numberElems(name, v)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, evalErrf(ErrEmptyCollection, "%s of an empty array", name)
	}
	return ns, nil
}
