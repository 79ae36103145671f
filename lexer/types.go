package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenNumber               // ASCII digits ([0-9])
	TokenString               // Anything between double quotes
	TokenName                 // ASCII letters ([a-zA-Z])
)

var tokenValues = map[TokenType][]byte{
	TokenOpenParen:  []byte{'('},
	TokenCloseParen: []byte{')'},
	TokenNumber:     []byte("0123456789"),
	TokenName:       []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenName:       "name",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range tokenValues[tt] {
			if v == c {
				return true
			}
		}
		return false
	}
}

// Space, tab, newline, vertical tab, form feed and carriage return.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isQuote(c byte) bool {
	return c == '"'
}
