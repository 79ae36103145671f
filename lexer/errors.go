package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrUnterminatedString = errors.New("unterminated string")
)

// Error describes where and why tokenization stopped. Kind is one of the
// sentinel errors of this package.
type Error struct {
	Kind error

	// Char is the offending character, only set for ErrUnknownCharacter.
	Char rune

	Offset int
	Line   int
	Col    int
}

func (e *Error) Error() string {
	if e.Kind == ErrUnknownCharacter {
		return fmt.Sprintf("%v %q at offset %d (line %d, col %d)", e.Kind, e.Char, e.Offset, e.Line, e.Col)
	}
	return fmt.Sprintf("%v at offset %d (line %d, col %d)", e.Kind, e.Offset, e.Line, e.Col)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
