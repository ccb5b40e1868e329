// printer.go — the rendering contract.
//
// FormatValue is the single human-readable rendering used by the print
// builtin and by the process output: decimal numbers, true/false, raw string
// text, comma-space-joined bracketed arrays, and opaque placeholder tokens
// for procedure values.

package arbor

import (
	"strconv"
	"strings"
)

// FormatValue renders v per the rendering contract.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTStr:
		return v.Data.(string)
	case VTArray:
		var b strings.Builder
		b.WriteByte('[')
		for idx, elem := range v.Data.([]Value) {
			if idx > 0 {
				b.WriteString(", ")
			}
			b.WriteString(FormatValue(elem))
		}
		b.WriteByte(']')
		return b.String()
	case VTBuiltin:
		return "<builtin " + v.Data.(*Builtin).Name + ">"
	case VTClosure:
		return "<closure>"
	default:
		return "<unknown>"
	}
}

// String implements fmt.Stringer with the same rendering, so values drop into
// fmt verbs naturally.
func (v Value) String() string { return FormatValue(v) }
