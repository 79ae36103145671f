package main

import (
	"log"
	"os"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/parser"
)

func main() {
	input := `(add 2 (subtract 4 2)) (concat "Hello" "world!")`

	root, err := parser.ParseBytes([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseBytes:", err)
	}

	ast.Print(os.Stdout, root)
}
