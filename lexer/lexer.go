package lexer

import (
	"io"
	"log"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)

	isNumber = isTokenType(TokenNumber)
	isName   = isTokenType(TokenName)
)

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer. A Lexer holds its own cursor and is not
// meant to be shared between goroutines; independent Lexers are safe to run
// concurrently.
type Lexer struct {
	in []byte

	tokens []Token

	lastErr error
	logger  *log.Logger

	start  int
	offset int

	startLine, startCol int
	line, col           int
}

// SetLogger enables tracing of emitted tokens and errors. A nil logger
// disables tracing.
func (lx *Lexer) SetLogger(logger *log.Logger) {
	lx.logger = logger
}

// Tokens returns the tokens detected by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

func (lx *Lexer) reset() {
	lx.tokens = []Token{}
	lx.lastErr = nil
	lx.start, lx.offset = 0, 0
	lx.startLine, lx.startCol = 1, 1
	lx.line, lx.col = 1, 1
}

// Scan reads the whole input and collects its tokens. No tokens are kept when
// an error is found.
func (lx *Lexer) Scan() error {
	lx.reset()

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		lx.tokens = nil
		return lx.lastErr
	}

	return nil
}

func (lx *Lexer) logf(format string, v ...interface{}) {
	if lx.logger != nil {
		lx.logger.Printf(format, v...)
	}
}

func (lx *Lexer) emit(tt TokenType, lexeme string) {
	tok := Token{
		tt:     tt,
		lexeme: lexeme,

		offset: lx.start,
		line:   lx.startLine,
		col:    lx.startCol,
	}
	lx.logf("token: %v", tok)
	lx.tokens = append(lx.tokens, tok)
}

func (lx *Lexer) mark() {
	lx.start = lx.offset
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) fail(kind error) *Error {
	return &Error{
		Kind:   kind,
		Offset: lx.start,
		Line:   lx.startLine,
		Col:    lx.startCol,
	}
}

func (lx *Lexer) peek() (byte, bool) {
	if lx.offset >= len(lx.in) {
		return 0, false
	}
	return lx.in[lx.offset], true
}

func (lx *Lexer) next() (byte, error) {
	c, ok := lx.peek()
	if !ok {
		return 0, io.EOF
	}

	lx.offset++
	if c == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return c, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	c, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenParen(c):
		return lexEmit(TokenOpenParen)
	case isCloseParen(c):
		return lexEmit(TokenCloseParen)

	case isWhitespace(c):
		return lexDefaultState

	case isNumber(c):
		return lexCollectStream(TokenNumber)
	case isName(c):
		return lexCollectStream(TokenName)

	case isQuote(c):
		return lexString

	}

	e := lx.fail(ErrUnknownCharacter)
	e.Char, _ = utf8.DecodeRune(lx.in[lx.start:])
	return lexStateError(e)
}

func lexString(lx *Lexer) lexState {
	for {
		c, err := lx.next()
		if err != nil {
			return lexStateError(lx.fail(ErrUnterminatedString))
		}
		if isQuote(c) {
			break
		}
	}
	lx.emit(TokenString, string(lx.in[lx.start+1:lx.offset-1]))
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, string(lx.in[lx.start:lx.offset]))
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	match := isTokenType(tt)
	return func(lx *Lexer) lexState {
		for {
			c, ok := lx.peek()
			if !ok || !match(c) {
				break
			}
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.logf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	return lx.Tokens(), nil
}

// TokenizeString is like Tokenize but takes a string.
func TokenizeString(in string) ([]Token, error) {
	return Tokenize([]byte(in))
}
