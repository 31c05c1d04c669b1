package dslang

type Parser struct {
	tokens TokenStream
}

func NewParser(tokens TokenStream) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func Parse(tokens TokenStream) (Program, error) {
	return NewParser(tokens).Parse()
}

// Parse reads statements until end of input. Nothing is returned on error.
func (p *Parser) Parse() (Program, error) {
	var program Program
	// leading indentation
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	for {
		t, err := p.tokens.Peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == TokenEOF {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	t, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case TokenPrint:
		return p.parsePrint()
	case TokenVarPrefix:
		return p.parseAssignment()
	}
	return nil, syntaxError(t.Pos, ErrUnexpectedToken, ": %s at start of statement", t)
}

func (p *Parser) parseIgnore() error {
	for {
		t, err := p.tokens.Peek()
		if err != nil {
			return err
		}
		if t.Kind != TokenIgnored {
			return nil
		}
		if _, err := p.tokens.Next(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseVariable() (Variable, error) {
	prefix, err := expect(p.tokens, TokenVarPrefix)
	if err != nil {
		return Variable{}, err
	}
	name, err := expect(p.tokens, TokenName)
	if err != nil {
		return Variable{}, err
	}
	if !isValidName(name.Text) {
		return Variable{}, syntaxError(name.Pos, ErrInvalidName, " %q", name.Text)
	}
	if err := p.parseIgnore(); err != nil {
		return Variable{}, err
	}
	return Variable{
		Pos:  prefix.Pos,
		Name: name.Text,
	}, nil
}

func (p *Parser) parseAssignment() (*Assignment, error) {
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	if _, err := expect(p.tokens, TokenEqual); err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	literal, err := expect(p.tokens, TokenString)
	if err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	return &Assignment{
		Pos:     variable.Pos,
		Target:  variable,
		Literal: literal.Text,
	}, nil
}

func (p *Parser) parsePrint() (*Print, error) {
	keyword, err := expect(p.tokens, TokenPrint)
	if err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	if _, err := expect(p.tokens, TokenLeftBracket); err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	if _, err := expect(p.tokens, TokenRightBracket); err != nil {
		return nil, err
	}
	if err := p.parseIgnore(); err != nil {
		return nil, err
	}
	return &Print{
		Pos:    keyword.Pos,
		Target: variable,
	}, nil
}

func expect(tokens TokenStream, kind TokenKind) (Token, error) {
	t, err := tokens.Next()
	if err != nil {
		return Token{}, err
	}
	if t.Kind != kind {
		return Token{}, syntaxError(t.Pos, ErrExpectedToken, ": expected %s, found %s", kind, t)
	}
	return t, nil
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if i == 0 && b >= '0' && b <= '9' {
			return false
		}
		if !isNameByte(b) {
			return false
		}
	}
	return true
}
