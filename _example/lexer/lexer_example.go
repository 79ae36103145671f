package main

import (
	"fmt"
	"log"

	"github.com/xiam/callexpr/lexer"
)

func main() {
	input := `
		(add
			(subtract 89 67)
			(concat "Hello" "world!")
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, offset: %d, line: %d, col: %d)\n\t-> %q\n\n", i, tt, tok.Offset(), line, col, lexeme)
	}
}
