// json.go — decoding the external JSON document into an expression tree.
//
// The wire shape is a compatibility contract: every node is a JSON object
// with exactly one PascalCase tag key — Number, Bool, String, Identifier,
// Application, Block, Cond, Clause, Parameters, Lambda, Let, Assignment.
// Scalar tags carry their literal payload; composite tags carry an array of
// child nodes (Let exactly three, Assignment exactly two).

package arbor

import (
	"encoding/json"
	"fmt"
)

// DecodeJSON decodes one tagged document into an Expr.
func DecodeJSON(data []byte) (Expr, error) {
	return decodeJSONNode(json.RawMessage(data))
}

func decodeJSONNode(raw json.RawMessage) (Expr, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Expr{}, fmt.Errorf("expected a tagged node object: %w", err)
	}
	if len(obj) != 1 {
		return Expr{}, fmt.Errorf("node must have exactly one tag, got %d keys", len(obj))
	}

	// Single iteration: the sole tag and its payload.
	var tag string
	var payload json.RawMessage
	for k, v := range obj {
		tag, payload = k, v
	}

	switch tag {
	case "Number":
		var n int64
		if err := json.Unmarshal(payload, &n); err != nil {
			return Expr{}, fmt.Errorf("Number payload: %w", err)
		}
		return NumberLit(n), nil

	case "Bool":
		var b bool
		if err := json.Unmarshal(payload, &b); err != nil {
			return Expr{}, fmt.Errorf("Bool payload: %w", err)
		}
		return BoolLit(b), nil

	case "String":
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return Expr{}, fmt.Errorf("String payload: %w", err)
		}
		return StringLit(s), nil

	case "Identifier":
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return Expr{}, fmt.Errorf("Identifier payload: %w", err)
		}
		return Ident(s), nil

	case "Application", "Block", "Cond", "Clause", "Parameters", "Lambda", "Let", "Assignment":
		children, err := decodeJSONChildren(tag, payload)
		if err != nil {
			return Expr{}, err
		}
		switch tag {
		case "Let":
			if len(children) != 3 {
				return Expr{}, fmt.Errorf("Let expects 3 children, got %d", len(children))
			}
			return Expr{Kind: KLet, List: children}, nil
		case "Assignment":
			if len(children) != 2 {
				return Expr{}, fmt.Errorf("Assignment expects 2 children, got %d", len(children))
			}
			return Expr{Kind: KAssignment, List: children}, nil
		case "Application":
			return Expr{Kind: KApplication, List: children}, nil
		case "Block":
			return Expr{Kind: KBlock, List: children}, nil
		case "Cond":
			return Expr{Kind: KCond, List: children}, nil
		case "Clause":
			return Expr{Kind: KClause, List: children}, nil
		case "Parameters":
			return Expr{Kind: KParameters, List: children}, nil
		default: // Lambda
			return Expr{Kind: KLambda, List: children}, nil
		}

	default:
		return Expr{}, fmt.Errorf("unknown node tag %q", tag)
	}
}

func decodeJSONChildren(tag string, payload json.RawMessage) ([]Expr, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%s payload must be an array: %w", tag, err)
	}
	children := make([]Expr, len(items))
	for idx, item := range items {
		child, err := decodeJSONNode(item)
		if err != nil {
			return nil, err
		}
		children[idx] = child
	}
	return children, nil
}
