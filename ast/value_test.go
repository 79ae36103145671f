package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/callexpr/lexer"
)

func TestNumberLiteral(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenNumber, "0042", 3, 1, 4)
	n := NewNumberLiteral(tok)

	assert.Equal(t, "0042", n.Value)
	assert.Equal(t, NodeTypeNumberLiteral, n.Type())
	assert.Equal(t, tok, n.Token())
	assert.Equal(t, "(NumberLiteral): 0042", n.String())

	i64, err := n.Int64()
	assert.NoError(t, err)
	assert.Equal(t, int64(42), i64)

	_, err = (&NumberLiteral{Value: "99999999999999999999"}).Int64()
	assert.Error(t, err)
}

func TestStringLiteral(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenString, "foo bar", 0, 1, 1)
	s := NewStringLiteral(tok)

	assert.Equal(t, "foo bar", s.Value)
	assert.Equal(t, NodeTypeStringLiteral, s.Type())
	assert.Equal(t, tok, s.Token())
	assert.Equal(t, `(StringLiteral): "foo bar"`, s.String())
}
