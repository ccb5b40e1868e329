package arbor

import (
	"testing"
)

// evalJSON decodes a JSON program and evaluates it on a fresh child of the
// interpreter's global scope, failing the test on any error.
func evalJSON(t *testing.T, ip *Interpreter, src string) Value {
	t.Helper()
	expr, err := DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	v, err := ip.Eval(expr)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	return v
}

// evalJSONErr is the failure-path twin: it requires an evaluation error and
// returns it.
func evalJSONErr(t *testing.T, ip *Interpreter, src string) error {
	t.Helper()
	expr, err := DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, err = ip.Eval(expr)
	if err == nil {
		t.Fatalf("expected an error evaluating %s", src)
	}
	return err
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	got, ok := KindOf(err)
	if !ok {
		t.Fatalf("error is not an *EvalError: %v", err)
	}
	if got != kind {
		t.Fatalf("error kind = %v, want %v (err: %v)", got, kind, err)
	}
}

func mustInt(t *testing.T, v Value, want int64) {
	t.Helper()
	if v.Tag != VTInt || v.Data.(int64) != want {
		t.Fatalf("value = %s, want %d", FormatValue(v), want)
	}
}

func mustBool(t *testing.T, v Value, want bool) {
	t.Helper()
	if v.Tag != VTBool || v.Data.(bool) != want {
		t.Fatalf("value = %s, want %v", FormatValue(v), want)
	}
}

func mustStr(t *testing.T, v Value, want string) {
	t.Helper()
	if v.Tag != VTStr || v.Data.(string) != want {
		t.Fatalf("value = %s, want %q", FormatValue(v), want)
	}
}

// mustRender compares through the rendering contract, which is the process's
// observable output.
func mustRender(t *testing.T, v Value, want string) {
	t.Helper()
	if got := FormatValue(v); got != want {
		t.Fatalf("rendered value = %q, want %q", got, want)
	}
}
