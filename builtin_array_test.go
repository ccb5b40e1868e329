package arbor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Builtin_Array_Construction(t *testing.T) {
	ip := NewInterpreter()

	v := evalJSON(t, ip, `{"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}, {"Number": 3}]}`)
	if diff := cmp.Diff(Arr([]Value{Int(1), Int(2), Int(3)}), v); diff != "" {
		t.Fatalf("intArray mismatch (-want +got):\n%s", diff)
	}

	v = evalJSON(t, ip, `{"Application": [{"Identifier": "stringArray"}, {"String": "a"}, {"String": "b"}]}`)
	if diff := cmp.Diff(Arr([]Value{Str("a"), Str("b")}), v); diff != "" {
		t.Fatalf("stringArray mismatch (-want +got):\n%s", diff)
	}

	// Variadic, so empty construction is fine.
	mustRender(t, evalJSON(t, ip, `{"Application": [{"Identifier": "intArray"}]}`), "[]")

	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "intArray"}, {"String": "oops"}]}`), ErrTypeMismatch)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "stringArray"}, {"Number": 1}]}`), ErrTypeMismatch)
}

func Test_Builtin_Array_Access(t *testing.T) {
	ip := NewInterpreter()

	cases := []struct {
		program string
		want    string
	}{
		{`{"Application": [{"Identifier": "len"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}]}]}`, "2"},
		{`{"Application": [{"Identifier": "get"}, {"Application": [{"Identifier": "intArray"}, {"Number": 4}, {"Number": 5}]}, {"Number": 1}]}`, "5"},
		{`{"Application": [{"Identifier": "set"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}]}, {"Number": 0}, {"Number": 9}]}`, "[9, 2]"},
		{`{"Application": [{"Identifier": "append"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}]}, {"Number": 2}]}`, "[1, 2]"},
		{`{"Application": [{"Identifier": "remove"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}, {"Number": 3}]}, {"Number": 1}]}`, "[1, 3]"},
		{`{"Application": [{"Identifier": "rev"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}, {"Number": 3}]}]}`, "[3, 2, 1]"},
		{`{"Application": [{"Identifier": "sort"}, {"Application": [{"Identifier": "intArray"}, {"Number": 3}, {"Number": 1}, {"Number": 2}]}]}`, "[1, 2, 3]"},
		{`{"Application": [{"Identifier": "empty?"}, {"Application": [{"Identifier": "intArray"}]}]}`, "true"},
		{`{"Application": [{"Identifier": "empty?"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}]}]}`, "false"},
		{`{"Application": [{"Identifier": "head"}, {"Application": [{"Identifier": "intArray"}, {"Number": 7}, {"Number": 8}]}]}`, "7"},
		{`{"Application": [{"Identifier": "tail"}, {"Application": [{"Identifier": "intArray"}, {"Number": 7}, {"Number": 8}, {"Number": 9}]}]}`, "[8, 9]"},
		{`{"Application": [{"Identifier": "last"}, {"Application": [{"Identifier": "intArray"}, {"Number": 7}, {"Number": 8}]}]}`, "8"},
	}
	for _, c := range cases {
		mustRender(t, evalJSON(t, ip, c.program), c.want)
	}
}

// set must return a fresh array: the value originally bound stays intact.
func Test_Builtin_Array_CopyOnWrite(t *testing.T) {
	ip := NewInterpreter()
	v := evalJSON(t, ip, `{"Let": [
		{"Identifier": "arr"},
		{"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}, {"Number": 3}]},
		{"Block": [
			{"Application": [{"Identifier": "set"}, {"Identifier": "arr"}, {"Number": 0}, {"Number": 99}]},
			{"Application": [{"Identifier": "rev"}, {"Identifier": "arr"}]},
			{"Application": [{"Identifier": "sort"}, {"Application": [{"Identifier": "rev"}, {"Identifier": "arr"}]}]},
			{"Identifier": "arr"}
		]}
	]}`)
	mustRender(t, v, "[1, 2, 3]")
}

func Test_Builtin_Array_IndexErrors(t *testing.T) {
	ip := NewInterpreter()

	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "get"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}]}, {"Number": 5}]}`), ErrIndexOutOfRange)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "get"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}]}, {"Number": -1}]}`), ErrIndexOutOfRange)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "set"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}]}, {"Number": 1}, {"Number": 2}]}`), ErrIndexOutOfRange)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "remove"}, {"Application": [{"Identifier": "intArray"}]}, {"Number": 0}]}`), ErrIndexOutOfRange)
}

func Test_Builtin_Array_EmptyErrors(t *testing.T) {
	ip := NewInterpreter()

	for _, name := range []string{"head", "tail", "last", "mean", "median", "maxArray", "minArray"} {
		err := evalJSONErr(t, ip,
			`{"Application": [{"Identifier": "`+name+`"}, {"Application": [{"Identifier": "intArray"}]}]}`)
		wantKind(t, err, ErrEmptyCollection)
	}
}

func Test_Builtin_Array_Aggregation(t *testing.T) {
	ip := NewInterpreter()

	cases := []struct {
		program string
		want    string
	}{
		{`{"Application": [{"Identifier": "sum"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}, {"Number": 3}]}]}`, "6"},
		{`{"Application": [{"Identifier": "sum"}, {"Application": [{"Identifier": "intArray"}]}]}`, "0"},
		{`{"Application": [{"Identifier": "product"}, {"Application": [{"Identifier": "intArray"}, {"Number": 2}, {"Number": 3}, {"Number": 4}]}]}`, "24"},
		{`{"Application": [{"Identifier": "product"}, {"Application": [{"Identifier": "intArray"}]}]}`, "1"},
		{`{"Application": [{"Identifier": "median"}, {"Application": [{"Identifier": "intArray"}, {"Number": 3}, {"Number": 1}, {"Number": 2}]}]}`, "2"},
		{`{"Application": [{"Identifier": "median"}, {"Application": [{"Identifier": "intArray"}, {"Number": 4}, {"Number": 1}, {"Number": 2}, {"Number": 3}]}]}`, "2"},
		{`{"Application": [{"Identifier": "mean"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}, {"Number": 2}, {"Number": 4}]}]}`, "2"},
		{`{"Application": [{"Identifier": "maxArray"}, {"Application": [{"Identifier": "intArray"}, {"Number": 3}, {"Number": 9}, {"Number": 2}]}]}`, "9"},
		{`{"Application": [{"Identifier": "minArray"}, {"Application": [{"Identifier": "intArray"}, {"Number": 3}, {"Number": 9}, {"Number": 2}]}]}`, "2"},
	}
	for _, c := range cases {
		mustRender(t, evalJSON(t, ip, c.program), c.want)
	}

	// Aggregation over non-Number elements is a type error.
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "sum"}, {"Application": [{"Identifier": "stringArray"}, {"String": "a"}]}]}`), ErrTypeMismatch)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "sort"}, {"Application": [{"Identifier": "stringArray"}, {"String": "a"}]}]}`), ErrTypeMismatch)
}

func Test_Builtin_Array_TypeErrors(t *testing.T) {
	ip := NewInterpreter()

	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "len"}, {"Number": 3}]}`), ErrTypeMismatch)
	wantKind(t, evalJSONErr(t, ip,
		`{"Application": [{"Identifier": "get"}, {"Application": [{"Identifier": "intArray"}, {"Number": 1}]}, {"String": "0"}]}`), ErrTypeMismatch)
}
