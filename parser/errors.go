package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/callexpr/lexer"
)

var (
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrExpectedCallName = errors.New("expected call name")
	ErrUnterminatedCall = errors.New("unterminated call")
)

// Error describes why parsing stopped. Kind is one of the sentinel errors of
// this package.
type Error struct {
	Kind error

	// Position is a token index. It is len(tokens) when the end of input was
	// reached, and the index of the unmatched open paren for
	// ErrUnterminatedCall.
	Position int

	// Found is the offending token. For ErrUnterminatedCall it is the unmatched
	// open paren, for ErrUnexpectedEOF it is nil.
	Found *lexer.Token
}

func (e *Error) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("%v at token %d", e.Kind, e.Position)
	}
	line, col := e.Found.Pos()
	return fmt.Sprintf("%v at token %d: found %v %q (line %d, col %d)", e.Kind, e.Position, e.Found.Type(), e.Found.Text(), line, col)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
