package config

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// SelectEnv is what a select expression sees about a struct type.
type SelectEnv struct {
	Name      string
	Package   string // import path
	Exported  bool
	NumFields int // declared fields
	Generic   bool
}

// Selector is a compiled select expression.
type Selector struct {
	program *vm.Program
}

// Selector compiles Select. It returns nil without an expression.
func (f *File) Selector() (*Selector, error) {
	if f.Select == "" {
		return nil, nil
	}

	program, err := expr.Compile(f.Select, expr.Env(SelectEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	return &Selector{program: program}, nil
}

// Match evaluates the expression for one type. A nil Selector matches nothing.
func (s *Selector) Match(env SelectEnv) (bool, error) {
	if s == nil {
		return false, nil
	}

	res, err := vm.Run(s.program, env)
	if err != nil {
		return false, fmt.Errorf("select %s: %w", env.Name, err)
	}

	ok, _ := res.(bool)

	return ok, nil
}
