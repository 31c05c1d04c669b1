package dslang

import (
	"fmt"
	"io"
	"maps"
	"os"
)

type Interpreter struct {
	lexer   *Lexer
	env     *Env
	stdout  io.Writer
	program Program
}

// NewInterpreter takes ownership of lexer. stdout defaults to os.Stdout if nil.
func NewInterpreter(lexer *Lexer, stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Interpreter{
		lexer:  lexer,
		env:    NewEnv(),
		stdout: stdout,
	}
}

// Execute parses the whole source before running any statement.
func (i *Interpreter) Execute() error {
	program, err := Parse(i.lexer)
	if err != nil {
		return err
	}
	i.program = program
	for _, stmt := range program {
		if err := i.apply(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) apply(stmt Statement) error {
	switch stmt := stmt.(type) {

	case *Assignment:
		i.env.Def(stmt.Target.Name, stmt.Literal)
		return nil

	case *Print:
		value, ok := i.env.Get(stmt.Target.Name)
		if !ok {
			return runtimeError(stmt.Target.Pos, ErrUnboundVariable, " $%s", stmt.Target.Name)
		}
		if _, err := io.WriteString(i.stdout, value+"\n"); err != nil {
			return runtimeError(stmt.Pos, ErrOutput, ": %w", err)
		}
		return nil

	}
	panic(fmt.Errorf("unknown statement type %T", stmt))
}

// Program returns the statements of the last Execute call.
func (i *Interpreter) Program() Program {
	return i.program
}

// Globals returns a copy of the environment.
func (i *Interpreter) Globals() map[string]string {
	return maps.Clone(i.env.Vars)
}

func (i *Interpreter) String() string {
	return fmt.Sprintf("(Interpreter: %s)", i.env)
}
