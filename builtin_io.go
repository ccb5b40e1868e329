// builtin_io.go
//
// Builtins surfaced:
//   print(v...) — space-joined rendering of each argument plus a newline,
//                 written to the interpreter's Stdout; returns false.
//   wait(ms)    — block the calling evaluation for ms milliseconds; returns
//                 false. Blocking and uncancellable.
package arbor

import (
	"fmt"
	"strings"
	"time"
)

func registerIOBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("print", Variadic, func(ip *Interpreter, args []Value) (Value, error) {
		parts := make([]string, len(args))
		for idx, a := range args {
			parts[idx] = FormatValue(a)
		}
		fmt.Fprintln(ip.Stdout, strings.Join(parts, " "))
		return False, nil
	})

	ip.RegisterBuiltin("wait", 1, func(_ *Interpreter, args []Value) (Value, error) {
		ms, err := oneInt("wait", args)
		if err != nil {
			return Value{}, err
		}
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return False, nil
	})
}
