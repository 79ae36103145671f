package ast

import (
	"fmt"

	"github.com/xiam/callexpr/lexer"
)

// Node is implemented by *Program, *CallExpression, *NumberLiteral and
// *StringLiteral. The set is closed: no type outside of this package can
// satisfy it.
type Node interface {
	// Type returns the type of the node
	Type() NodeType

	// Token returns the token that started the node
	Token() lexer.Token

	fmt.Stringer

	node()
}

// Program is the root of the tree, it holds one node per top-level
// expression.
type Program struct {
	Body []Node
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{
		Body: []Node{},
	}
}

// Type returns NodeTypeProgram
func (p *Program) Type() NodeType {
	return NodeTypeProgram
}

// Token returns the zero token, a program is not started by any token.
func (p *Program) Token() lexer.Token {
	return lexer.Token{}
}

// Push appends a completed top-level expression to the program.
func (p *Program) Push(n Node) error {
	if isNil(n) {
		return ErrNilNode
	}
	p.Body = append(p.Body, n)
	return nil
}

func (p *Program) String() string {
	return fmt.Sprintf("(%v)[%d]", p.Type(), len(p.Body))
}

func (p *Program) node() {}

// CallExpression represents a (name params...) form.
type CallExpression struct {
	Name   string
	Params []Node

	tok lexer.Token
}

// NewCallExpression creates a call without parameters. tok is the opening
// parenthesis.
func NewCallExpression(tok lexer.Token, name string) *CallExpression {
	return &CallExpression{
		Name:   name,
		Params: []Node{},
		tok:    tok,
	}
}

// Type returns NodeTypeCallExpression
func (c *CallExpression) Type() NodeType {
	return NodeTypeCallExpression
}

// Token returns the opening parenthesis of the call
func (c *CallExpression) Token() lexer.Token {
	return c.tok
}

// Push appends a completed parameter to the call.
func (c *CallExpression) Push(n Node) error {
	if isNil(n) {
		return ErrNilNode
	}
	c.Params = append(c.Params, n)
	return nil
}

func (c *CallExpression) String() string {
	return fmt.Sprintf("(%v %s)[%d]", c.Type(), c.Name, len(c.Params))
}

func (c *CallExpression) node() {}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Program:
		return v == nil
	case *CallExpression:
		return v == nil
	case *NumberLiteral:
		return v == nil
	case *StringLiteral:
		return v == nil
	}
	return false
}

var (
	_ = Node(&Program{})
	_ = Node(&CallExpression{})
)
