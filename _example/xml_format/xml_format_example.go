package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/ast"
)

type xmlPrinter struct {
	level int
}

func (x *xmlPrinter) indent() string {
	return strings.Repeat("  ", x.level)
}

func (x *xmlPrinter) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%s<%s>\n", x.indent(), n.Type())
	case *ast.CallExpression:
		fmt.Printf("%s<%s name=%q>\n", x.indent(), n.Type(), n.Name)
	case *ast.NumberLiteral:
		fmt.Printf("%s<%s>%s</%s>\n", x.indent(), n.Type(), n.Value, n.Type())
		return nil
	case *ast.StringLiteral:
		fmt.Printf("%s<%s>%s</%s>\n", x.indent(), n.Type(), n.Value, n.Type())
		return nil
	}

	x.level++
	return &closer{xmlPrinter: x, node: node}
}

// closer prints the closing tag of a vector node once its children are done.
type closer struct {
	*xmlPrinter
	node ast.Node
}

func (c *closer) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		c.level--
		fmt.Printf("%s</%s>\n", c.indent(), c.node.Type())
		return nil
	}
	return c.xmlPrinter.Visit(node)
}

func main() {
	root, err := callexpr.NewReader(os.Stdin).Parse()
	if err != nil {
		log.Fatal("callexpr.Parse:", err)
	}

	ast.Walk(&xmlPrinter{}, root)
}
