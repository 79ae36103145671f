package parser

import (
	"log"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
)

// Parser builds a program out of a sequence of tokens using recursive
// descent. A Parser holds its own cursor and is not meant to be shared between
// goroutines; independent Parsers are safe to run concurrently.
type Parser struct {
	tokens []lexer.Token
	pos    int

	logger *log.Logger
}

// New creates a parser for the given tokens. The tokens are never modified.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// SetLogger enables tracing of completed nodes and errors. A nil logger
// disables tracing.
func (p *Parser) SetLogger(logger *log.Logger) {
	p.logger = logger
}

// Parse builds the program. On error no partial tree is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	p.pos = 0

	root := ast.NewProgram()
	for !p.eof() {
		node, err := p.parseExpression()
		if err != nil {
			p.logf("parser error: %v", err)
			return nil, err
		}
		if err := root.Push(node); err != nil {
			return nil, err
		}
	}

	p.logf("node: %v", root)
	return root, nil
}

func (p *Parser) logf(format string, v ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, v...)
	}
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) fail(kind error, found *lexer.Token) *Error {
	return &Error{
		Kind:     kind,
		Position: p.pos,
		Found:    found,
	}
}

// peek returns the token under the cursor without consuming it.
func (p *Parser) peek() (*lexer.Token, error) {
	if p.eof() {
		return nil, p.fail(ErrUnexpectedEOF, nil)
	}
	tok := p.tokens[p.pos]
	return &tok, nil
}

func (p *Parser) parseExpression() (ast.Node, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type() {
	case lexer.TokenNumber:
		p.pos++
		return ast.NewNumberLiteral(*tok), nil

	case lexer.TokenString:
		p.pos++
		return ast.NewStringLiteral(*tok), nil

	case lexer.TokenOpenParen:
		return p.parseCall()
	}

	return nil, p.fail(ErrUnexpectedToken, tok)
}

func (p *Parser) parseCall() (ast.Node, error) {
	start := p.pos
	open := p.tokens[start]
	p.pos++

	name, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !name.Is(lexer.TokenName) {
		return nil, p.fail(ErrExpectedCallName, name)
	}
	p.pos++

	call := ast.NewCallExpression(open, name.Text())
	for {
		if p.eof() {
			return nil, &Error{
				Kind:     ErrUnterminatedCall,
				Position: start,
				Found:    &open,
			}
		}

		if p.tokens[p.pos].Is(lexer.TokenCloseParen) {
			p.pos++
			break
		}

		param, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := call.Push(param); err != nil {
			return nil, err
		}
	}

	p.logf("node: %v", call)
	return call, nil
}

// Parse builds a program out of the given tokens.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).Parse()
}

// ParseBytes tokenizes and parses the given source. Lexer errors are returned
// as they are.
func ParseBytes(in []byte) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
