package dslang

type Variable struct {
	Pos  Pos
	Name string
}

// Statement is implemented by *Assignment and *Print only.
type Statement interface {
	StatementPos() Pos
	isStatement()
}

type Assignment struct {
	Pos     Pos
	Target  Variable
	Literal string
}

type Print struct {
	Pos    Pos
	Target Variable
}

type Program []Statement

var (
	_ Statement = new(Assignment)
	_ Statement = new(Print)
)

func (a *Assignment) StatementPos() Pos { return a.Pos }
func (p *Print) StatementPos() Pos      { return p.Pos }

func (*Assignment) isStatement() {}
func (*Print) isStatement()      {}
