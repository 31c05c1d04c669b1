package dslang

type TokenStream interface {
	Peek() (Token, error)
	Next() (Token, error)
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Peek() (Token, error) {
	if s.idx >= len(s.tokens) {
		return Token{Kind: TokenEOF}, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Next() (Token, error) {
	t, err := s.Peek()
	if s.idx < len(s.tokens) {
		s.idx++
	}
	return t, err
}
