package ast

import (
	"fmt"
	"strings"
)

// Validate checks that a program can be handed to a consumer: no node is nil,
// every call has a name and every literal could have been produced from
// source text.
func Validate(p *Program) error {
	if p == nil {
		return fmt.Errorf("program: %w", ErrNilNode)
	}
	return validateList("Body", p.Body)
}

func validateList(path string, nodes []Node) error {
	for i := range nodes {
		if err := validateNode(fmt.Sprintf("%s[%d]", path, i), nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(path string, n Node) error {
	if isNil(n) {
		return fmt.Errorf("%s: %w", path, ErrNilNode)
	}

	switch n := n.(type) {
	case *CallExpression:
		if n.Name == "" {
			return fmt.Errorf("%s: %w", path, ErrEmptyCallName)
		}
		if !isLetters(n.Name) {
			return fmt.Errorf("%s: call name %q: %w", path, n.Name, ErrInvalidLiteral)
		}
		return validateList(path+".Params", n.Params)

	case *NumberLiteral:
		if n.Value == "" || !isDigits(n.Value) {
			return fmt.Errorf("%s: number %q: %w", path, n.Value, ErrInvalidLiteral)
		}

	case *StringLiteral:
		if strings.ContainsRune(n.Value, '"') {
			return fmt.Errorf("%s: string %q: %w", path, n.Value, ErrInvalidLiteral)
		}

	case *Program:
		return fmt.Errorf("%s: %w", path, ErrNestedProgram)

	default:
		panic(fmt.Sprintf("ast.Validate: unexpected node type %T", n))
	}

	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
