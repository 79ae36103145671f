package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node to w
func Print(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if isNil(n) {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n := n.(type) {

	case *Program:
		fmt.Fprintf(w, "[%d]\n", len(n.Body))
		for i := range n.Body {
			printLevel(w, n.Body[i], level+1)
		}

	case *CallExpression:
		fmt.Fprintf(w, "%s (%v)\n", n.Name, n.Token())
		for i := range n.Params {
			printLevel(w, n.Params[i], level+1)
		}

	case *NumberLiteral:
		fmt.Fprintf(w, "%s (%v)\n", n.Value, n.Token())

	case *StringLiteral:
		fmt.Fprintf(w, "%q (%v)\n", n.Value, n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into source text. Top-level expressions of a
// program are separated by a single space.
func Encode(n Node) []byte {
	return []byte(encodeNode(n))
}

func encodeList(nodes []Node) string {
	chunks := make([]string, 0, len(nodes))
	for i := range nodes {
		chunks = append(chunks, encodeNode(nodes[i]))
	}
	return strings.Join(chunks, " ")
}

func encodeNode(n Node) string {
	if isNil(n) {
		return ""
	}
	switch n := n.(type) {
	case *Program:
		return encodeList(n.Body)

	case *CallExpression:
		if len(n.Params) == 0 {
			return fmt.Sprintf("(%s)", n.Name)
		}
		return fmt.Sprintf("(%s %s)", n.Name, encodeList(n.Params))

	case *NumberLiteral:
		return n.Value

	case *StringLiteral:
		return `"` + n.Value + `"`

	default:
		panic("unknown node type")
	}
}
