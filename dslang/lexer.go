package dslang

import (
	"iter"
	"unicode/utf8"
)

// Lexer scans a Source line by line. Line breaks are consumed by the line
// split, so tokens never span lines.
type Lexer struct {
	source *Source
	line   int // index into source.Lines
	offset int // byte offset into the current line
	peeked *Token
}

var _ TokenStream = new(Lexer)

func NewLexer(source *Source) *Lexer {
	return &Lexer{
		source: source,
	}
}

func (l *Lexer) Source() *Source {
	return l.source
}

func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t, nil
	}
	return l.scan()
}

// Peek scans the next token into the lookahead slot. Repeated calls without
// Next return the same token.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	t, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &t
	return t, nil
}

func (l *Lexer) Expect(kind TokenKind) (Token, error) {
	return expect(l, kind)
}

// Tokens yields tokens up to and including EOF, or up to the first error.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			t, err := l.Next()
			if err != nil {
				yield(t, err)
				return
			}
			if !yield(t, nil) {
				return
			}
			if t.Kind == TokenEOF {
				return
			}
		}
	}
}

func (l *Lexer) pos(offset int) Pos {
	line := l.source.Lines[l.line]
	return Pos{
		Source: l.source,
		Line:   l.line + 1,
		Column: utf8.RuneCountInString(line[:offset]) + 1,
	}
}

func (l *Lexer) eofPos() Pos {
	lines := l.source.Lines
	if len(lines) == 0 {
		return Pos{Source: l.source, Line: 1, Column: 1}
	}
	return Pos{
		Source: l.source,
		Line:   len(lines),
		Column: utf8.RuneCountInString(lines[len(lines)-1]) + 1,
	}
}

func (l *Lexer) scan() (Token, error) {
	lines := l.source.Lines
	for l.line < len(lines) && l.offset >= len(lines[l.line]) {
		l.line++
		l.offset = 0
	}
	if l.line >= len(lines) {
		return Token{Kind: TokenEOF, Pos: l.eofPos()}, nil
	}

	line := lines[l.line]
	start := l.offset
	pos := l.pos(start)
	r, size := utf8.DecodeRuneInString(line[start:])
	l.offset += size

	switch {
	case r == '$':
		return Token{Kind: TokenVarPrefix, Pos: pos}, nil
	case r == '(':
		return Token{Kind: TokenLeftBracket, Pos: pos}, nil
	case r == ')':
		return Token{Kind: TokenRightBracket, Pos: pos}, nil
	case r == '=':
		return Token{Kind: TokenEqual, Pos: pos}, nil
	case r == '"':
		return l.scanString(line, pos)
	case r == '_' || r >= 'A' && r <= 'z':
		// the A..z range also admits [ \ ] ^ and backtick as a first character
		return l.scanName(line, start, pos)
	case r == ' ' || r == '\n' || r == '\r' || r == '\t':
		return Token{Kind: TokenIgnored, Pos: pos}, nil
	}

	return Token{}, lexicalError(pos, ErrUnexpectedCharacter, " %q", r)
}

func (l *Lexer) scanString(line string, pos Pos) (Token, error) {
	for i := l.offset; i < len(line); i++ {
		if line[i] == '"' {
			text := line[l.offset:i]
			l.offset = i + 1
			return Token{
				Kind: TokenString,
				Text: text,
				Pos:  pos,
			}, nil
		}
	}
	l.offset = len(line)
	return Token{}, lexicalError(pos, ErrUnterminatedString, "")
}

func (l *Lexer) scanName(line string, start int, pos Pos) (Token, error) {
	end := l.offset
	for end < len(line) && isNameByte(line[end]) {
		end++
	}
	l.offset = end
	text := line[start:end]
	kind := TokenName
	if k, ok := keywords[text]; ok {
		kind = k
	}
	return Token{
		Kind: kind,
		Text: text,
		Pos:  pos,
	}, nil
}

func isNameByte(b byte) bool {
	return b == '_' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9'
}
