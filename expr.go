// expr.go — the Arbor expression model.
//
// An expression is an immutable tagged tree. The closed set of kinds below is
// the whole language; the evaluator (eval.go) is the only component that
// interprets it, and structural validation (clause shape, parameter lists,
// let/assignment targets) happens there, at evaluation time.

package arbor

// ExprKind enumerates the node kinds of the expression tree.
type ExprKind int

const (
	KNumber      ExprKind = iota // integer literal (Num)
	KBool                        // boolean literal (Flag)
	KString                      // string literal (Text)
	KIdentifier                  // name reference (Text), resolved at eval time
	KApplication                 // List[0] is the operator, the rest arguments
	KBlock                       // sequential evaluation, result of the last
	KCond                        // ordered clauses; first true condition wins
	KClause                      // exactly (condition, consequent); only under Cond
	KParameters                  // identifier list; only under Lambda
	KLambda                      // exactly (Parameters, body)
	KLet                         // exactly (Identifier, value, body)
	KAssignment                  // exactly (Identifier, value)
)

var exprKindNames = [...]string{
	KNumber:      "Number",
	KBool:        "Bool",
	KString:      "String",
	KIdentifier:  "Identifier",
	KApplication: "Application",
	KBlock:       "Block",
	KCond:        "Cond",
	KClause:      "Clause",
	KParameters:  "Parameters",
	KLambda:      "Lambda",
	KLet:         "Let",
	KAssignment:  "Assignment",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr is one node of the tree. Kind selects which payload field is live:
// Num for KNumber, Flag for KBool, Text for KString/KIdentifier, List for
// every composite kind.
type Expr struct {
	Kind ExprKind
	Num  int64
	Flag bool
	Text string
	List []Expr
}

// Constructors. Hosts and tests build trees with these; the document decoders
// produce the same shapes.

func NumberLit(n int64) Expr  { return Expr{Kind: KNumber, Num: n} }
func BoolLit(b bool) Expr     { return Expr{Kind: KBool, Flag: b} }
func StringLit(s string) Expr { return Expr{Kind: KString, Text: s} }
func Ident(name string) Expr  { return Expr{Kind: KIdentifier, Text: name} }

// Application builds a call node; the first item is the operator expression.
func Application(items ...Expr) Expr { return Expr{Kind: KApplication, List: items} }

func Block(items ...Expr) Expr   { return Expr{Kind: KBlock, List: items} }
func Cond(clauses ...Expr) Expr  { return Expr{Kind: KCond, List: clauses} }
func Clause(cond, then Expr) Expr { return Expr{Kind: KClause, List: []Expr{cond, then}} }

// Parameters builds a lambda parameter list from plain names.
func Parameters(names ...string) Expr {
	ids := make([]Expr, len(names))
	for i, name := range names {
		ids[i] = Ident(name)
	}
	return Expr{Kind: KParameters, List: ids}
}

func Lambda(params, body Expr) Expr {
	return Expr{Kind: KLambda, List: []Expr{params, body}}
}

// Let introduces a binding visible in body (and in later expressions of the
// enclosing scope), but not in the value expression itself.
func Let(name string, value, body Expr) Expr {
	return Expr{Kind: KLet, List: []Expr{Ident(name), value, body}}
}

// Assignment mutates an existing binding in whichever enclosing scope first
// introduced it.
func Assignment(name string, value Expr) Expr {
	return Expr{Kind: KAssignment, List: []Expr{Ident(name), value}}
}
