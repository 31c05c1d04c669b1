package dslang

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch t.Kind {
	case TokenName, TokenString:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenVarPrefix
	TokenLeftBracket
	TokenRightBracket
	TokenEqual
	TokenString
	TokenName
	TokenPrint
	TokenIgnored
)

var tokenKindNames = [...]string{
	TokenInvalid:      "invalid",
	TokenEOF:          "end of input",
	TokenVarPrefix:    "'$'",
	TokenLeftBracket:  "'('",
	TokenRightBracket: "')'",
	TokenEqual:        "'='",
	TokenString:       "string",
	TokenName:         "name",
	TokenPrint:        "print",
	TokenIgnored:      "whitespace",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// keywords is read-only after init.
var keywords = map[string]TokenKind{
	"print": TokenPrint,
}
