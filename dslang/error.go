package dslang

import (
	"errors"
	"fmt"
	"strings"
)

// error categories
var (
	ErrLexical = errors.New("lexical error")
	ErrSyntax  = errors.New("syntax error")
	ErrRuntime = errors.New("runtime error")
)

var (
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrExpectedToken       = errors.New("unexpected token kind")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrInvalidName         = errors.New("invalid variable name")
	ErrUnboundVariable     = errors.New("unbound variable")
	ErrOutput              = errors.New("write output")
)

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos))
	if p.Pos.Source == nil {
		return sb.String()
	}

	// Line content
	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := strings.TrimRight(lines[idx], "\r")
		sb.WriteString("\n")
		sb.WriteString(line)
		sb.WriteString("\n")

		// Caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				for range runeWidth(r) {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

func lexicalError(pos Pos, err error, format string, args ...any) error {
	return WithPos(
		fmt.Errorf("%w: %w"+format, append([]any{ErrLexical, err}, args...)...),
		pos,
	)
}

func syntaxError(pos Pos, err error, format string, args ...any) error {
	return WithPos(
		fmt.Errorf("%w: %w"+format, append([]any{ErrSyntax, err}, args...)...),
		pos,
	)
}

func runtimeError(pos Pos, err error, format string, args ...any) error {
	return WithPos(
		fmt.Errorf("%w: %w"+format, append([]any{ErrRuntime, err}, args...)...),
		pos,
	)
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
