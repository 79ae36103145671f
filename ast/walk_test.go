package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// (add 2 (subtract 4 2)) "x"
func newTestProgram() *Program {
	return &Program{
		Body: []Node{
			&CallExpression{
				Name: "add",
				Params: []Node{
					&NumberLiteral{Value: "2"},
					&CallExpression{
						Name: "subtract",
						Params: []Node{
							&NumberLiteral{Value: "4"},
							&NumberLiteral{Value: "2"},
						},
					},
				},
			},
			&StringLiteral{Value: "x"},
		},
	}
}

type countingVisitor struct {
	visited []NodeType
	leaves  int
}

func (c *countingVisitor) Visit(n Node) Visitor {
	if n == nil {
		c.leaves++
		return nil
	}
	c.visited = append(c.visited, n.Type())
	return c
}

func TestWalk(t *testing.T) {
	v := &countingVisitor{}
	Walk(v, newTestProgram())

	assert.Equal(t, []NodeType{
		NodeTypeProgram,
		NodeTypeCallExpression,
		NodeTypeNumberLiteral,
		NodeTypeCallExpression,
		NodeTypeNumberLiteral,
		NodeTypeNumberLiteral,
		NodeTypeStringLiteral,
	}, v.visited)
	// One closing Visit(nil) per visited node.
	assert.Equal(t, len(v.visited), v.leaves)
}

func TestInspect(t *testing.T) {
	names := []string{}
	Inspect(newTestProgram(), func(n Node) bool {
		if call, ok := n.(*CallExpression); ok {
			names = append(names, call.Name)
			// Do not descend into calls.
			return false
		}
		return true
	})
	assert.Equal(t, []string{"add"}, names)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 2, Depth(newTestProgram()))
	assert.Equal(t, 0, Depth(NewProgram()))
	assert.Equal(t, 0, Depth(&NumberLiteral{Value: "1"}))
	assert.Equal(t, 1, Depth(&CallExpression{Name: "f"}))
}
