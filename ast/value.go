package ast

import (
	"fmt"
	"strconv"

	"github.com/xiam/callexpr/lexer"
)

// NumberLiteral holds the digits of a number exactly as they were written.
type NumberLiteral struct {
	Value string

	tok lexer.Token
}

// NewNumberLiteral creates a number literal from a number token.
func NewNumberLiteral(tok lexer.Token) *NumberLiteral {
	return &NumberLiteral{
		Value: tok.Text(),
		tok:   tok,
	}
}

// Type returns NodeTypeNumberLiteral
func (n *NumberLiteral) Type() NodeType {
	return NodeTypeNumberLiteral
}

// Token returns the number token
func (n *NumberLiteral) Token() lexer.Token {
	return n.tok
}

// Int64 converts the digits into an int64, it fails if the value does not fit.
func (n *NumberLiteral) Int64() (int64, error) {
	return strconv.ParseInt(n.Value, 10, 64)
}

func (n *NumberLiteral) String() string {
	return fmt.Sprintf("(%v): %s", n.Type(), n.Value)
}

func (n *NumberLiteral) node() {}

// StringLiteral holds the text between the quotes of a string.
type StringLiteral struct {
	Value string

	tok lexer.Token
}

// NewStringLiteral creates a string literal from a string token.
func NewStringLiteral(tok lexer.Token) *StringLiteral {
	return &StringLiteral{
		Value: tok.Text(),
		tok:   tok,
	}
}

// Type returns NodeTypeStringLiteral
func (s *StringLiteral) Type() NodeType {
	return NodeTypeStringLiteral
}

// Token returns the string token
func (s *StringLiteral) Token() lexer.Token {
	return s.tok
}

func (s *StringLiteral) String() string {
	return fmt.Sprintf("(%v): %q", s.Type(), s.Value)
}

func (s *StringLiteral) node() {}

var (
	_ = Node(&NumberLiteral{})
	_ = Node(&StringLiteral{})
)
