// yaml.go — the same tagged node shape decoded from YAML documents.
//
// Mirrors json.go: every node is a single-key mapping whose key is the node
// tag. YAML's block syntax makes hand-written test programs considerably
// less bracket-heavy than the JSON form.

package arbor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes one tagged document into an Expr.
func DecodeYAML(data []byte) (Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Expr{}, fmt.Errorf("yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return Expr{}, fmt.Errorf("expected exactly one YAML document")
	}
	return decodeYAMLNode(doc.Content[0])
}

func decodeYAMLNode(n *yaml.Node) (Expr, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return Expr{}, fmt.Errorf("line %d: node must be a single-key mapping", n.Line)
	}
	key, payload := n.Content[0], n.Content[1]
	if key.Kind != yaml.ScalarNode {
		return Expr{}, fmt.Errorf("line %d: node tag must be a scalar", key.Line)
	}

	switch tag := key.Value; tag {
	case "Number":
		var v int64
		if err := payload.Decode(&v); err != nil {
			return Expr{}, fmt.Errorf("line %d: Number payload: %w", payload.Line, err)
		}
		return NumberLit(v), nil

	case "Bool":
		var b bool
		if err := payload.Decode(&b); err != nil {
			return Expr{}, fmt.Errorf("line %d: Bool payload: %w", payload.Line, err)
		}
		return BoolLit(b), nil

	case "String":
		var s string
		if err := payload.Decode(&s); err != nil {
			return Expr{}, fmt.Errorf("line %d: String payload: %w", payload.Line, err)
		}
		return StringLit(s), nil

	case "Identifier":
		var s string
		if err := payload.Decode(&s); err != nil {
			return Expr{}, fmt.Errorf("line %d: Identifier payload: %w", payload.Line, err)
		}
		return Ident(s), nil

	case "Application", "Block", "Cond", "Clause", "Parameters", "Lambda", "Let", "Assignment":
		if payload.Kind != yaml.SequenceNode {
			return Expr{}, fmt.Errorf("line %d: %s payload must be a sequence", payload.Line, tag)
		}
		children := make([]Expr, len(payload.Content))
		for idx, item := range payload.Content {
			child, err := decodeYAMLNode(item)
			if err != nil {
				return Expr{}, err
			}
			children[idx] = child
		}
		switch tag {
		case "Let":
			if len(children) != 3 {
				return Expr{}, fmt.Errorf("line %d: Let expects 3 children, got %d", key.Line, len(children))
			}
			return Expr{Kind: KLet, List: children}, nil
		case "Assignment":
			if len(children) != 2 {
				return Expr{}, fmt.Errorf("line %d: Assignment expects 2 children, got %d", key.Line, len(children))
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
		return Expr{}, fmt.Errorf("line %d: unknown node tag %q", key.Line, tag)
	}
}
