package ast

import (
	"fmt"
)

// A Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree in depth-first order.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, child := range n.Body {
			Walk(v, child)
		}
	case *CallExpression:
		for _, child := range n.Params {
			Walk(v, child)
		}
	case *NumberLiteral, *StringLiteral:
		// leaves
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses the tree in depth-first order calling f(n) for each node.
// If f returns true, Inspect continues with the children of n, followed by a
// call of f(nil).
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Depth returns the maximum nesting depth of call expressions under n. A
// literal has depth 0 and (f) has depth 1.
func Depth(n Node) int {
	switch n := n.(type) {
	case *Program:
		return maxDepth(n.Body)
	case *CallExpression:
		return 1 + maxDepth(n.Params)
	case *NumberLiteral, *StringLiteral:
		return 0
	default:
		panic(fmt.Sprintf("ast.Depth: unexpected node type %T", n))
	}
}

func maxDepth(nodes []Node) int {
	max := 0
	for _, child := range nodes {
		if d := Depth(child); d > max {
			max = d
		}
	}
	return max
}
