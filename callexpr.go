// Package callexpr turns source text of a small parenthesized call language
// into an AST.
//
//	(add 2 (subtract 4 2))
//
// Source is split into tokens by package lexer, the tokens are turned into a
// tree by package parser and the tree types live in package ast.
package callexpr

import (
	"fmt"
	"io"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/parser"
)

// Reader parses a program out of an io.Reader.
type Reader struct {
	r io.Reader
}

// Parse tokenizes and parses a program.
func Parse(in []byte) (*ast.Program, error) {
	return parser.ParseBytes(in)
}

// NewReader creates a Reader that will consume r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads all the input and parses it.
func (r *Reader) Parse() (*ast.Program, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return Parse(in)
}
