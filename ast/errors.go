package ast

import (
	"errors"
)

var (
	ErrNilNode        = errors.New("nil node")
	ErrEmptyCallName  = errors.New("empty call name")
	ErrInvalidLiteral = errors.New("invalid literal")
	ErrNestedProgram  = errors.New("program is not at the root")
)
