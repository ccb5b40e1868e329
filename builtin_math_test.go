package arbor

import (
	"testing"
)

func Test_Builtin_Math_Arithmetic(t *testing.T) {
	ip := NewInterpreter()

	cases := []struct {
		program string
		want    string
	}{
		{`{"Application": [{"Identifier": "add"}, {"Number": 2}, {"Number": 3}]}`, "5"},
		{`{"Application": [{"Identifier": "sub"}, {"Number": 2}, {"Number": 3}]}`, "-1"},
		{`{"Application": [{"Identifier": "mul"}, {"Number": 4}, {"Number": 3}]}`, "12"},
		{`{"Application": [{"Identifier": "div"}, {"Number": 7}, {"Number": 2}]}`, "3"},
		{`{"Application": [{"Identifier": "pow"}, {"Number": 2}, {"Number": 10}]}`, "1024"},
		{`{"Application": [{"Identifier": "pow"}, {"Number": 5}, {"Number": 0}]}`, "1"},
		{`{"Application": [{"Identifier": "mod"}, {"Number": 7}, {"Number": 3}]}`, "1"},
		{`{"Application": [{"Identifier": "abs"}, {"Number": -9}]}`, "9"},
		{`{"Application": [{"Identifier": "abs"}, {"Number": 9}]}`, "9"},
		{`{"Application": [{"Identifier": "max"}, {"Number": 2}, {"Number": 3}]}`, "3"},
		{`{"Application": [{"Identifier": "min"}, {"Number": 2}, {"Number": 3}]}`, "2"},
		{`{"Application": [{"Identifier": "fact"}, {"Number": 0}]}`, "1"},
		{`{"Application": [{"Identifier": "fact"}, {"Number": 5}]}`, "120"},
	}
	for _, c := range cases {
		mustRender(t, evalJSON(t, ip, c.program), c.want)
	}
}

func Test_Builtin_Math_Comparison(t *testing.T) {
	ip := NewInterpreter()

	cases := []struct {
		program string
		want    bool
	}{
		{`{"Application": [{"Identifier": "eq"}, {"Number": 3}, {"Number": 3}]}`, true},
		{`{"Application": [{"Identifier": "eq"}, {"Number": 3}, {"Number": 4}]}`, false},
		{`{"Application": [{"Identifier": "<"}, {"Number": 3}, {"Number": 4}]}`, true},
		{`{"Application": [{"Identifier": ">"}, {"Number": 3}, {"Number": 4}]}`, false},
		{`{"Application": [{"Identifier": "<="}, {"Number": 4}, {"Number": 4}]}`, true},
		{`{"Application": [{"Identifier": ">="}, {"Number": 3}, {"Number": 4}]}`, false},
		{`{"Application": [{"Identifier": "zero?"}, {"Number": 0}]}`, true},
		{`{"Application": [{"Identifier": "zero?"}, {"Number": 1}]}`, false},
	}
	for _, c := range cases {
		mustBool(t, evalJSON(t, ip, c.program), c.want)
	}
}

func Test_Builtin_Math_Failures(t *testing.T) {
	ip := NewInterpreter()

	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "div"}, {"Number": 4}, {"Number": 0}]}`), ErrDivisionByZero)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "mod"}, {"Number": 4}, {"Number": 0}]}`), ErrDivisionByZero)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "fact"}, {"Number": -1}]}`), ErrTypeMismatch)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "pow"}, {"Number": 2}, {"Number": -1}]}`), ErrTypeMismatch)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "add"}, {"String": "two"}, {"Number": 3}]}`), ErrTypeMismatch)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "eq"}, {"Number": 3}, {"Bool": true}]}`), ErrTypeMismatch)
}

// Every fixed-arity builtin must reject a call with one extra Number argument
// before its implementation ever runs.
func Test_Builtin_ArityEnforcedForAll(t *testing.T) {
	ip := NewInterpreter()

	for _, name := range ip.BuiltinNames() {
		fn, ok := ip.LookupBuiltin(name)
		if !ok {
			t.Fatalf("builtin %q vanished", name)
		}
		b := fn.Data.(*Builtin)
		if b.Arity == Variadic {
			continue
		}

		items := []Expr{Ident(name)}
		for k := 0; k < b.Arity+1; k++ {
			items = append(items, NumberLit(1))
		}
		_, err := ip.Eval(Application(items...))
		if err == nil {
			t.Fatalf("%s accepted %d arguments, declared arity %d", name, b.Arity+1, b.Arity)
		}
		wantKind(t, err, ErrArityMismatch)
	}
}
