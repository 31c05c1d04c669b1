package dslang

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(at func(line, col int) Pos) Program
	}{
		{
			name:  "assignment and print",
			input: "$greeting = \"hello\"\nprint($greeting)",
			expected: func(at func(int, int) Pos) Program {
				return Program{
					&Assignment{
						Pos:     at(1, 1),
						Target:  Variable{Pos: at(1, 1), Name: "greeting"},
						Literal: "hello",
					},
					&Print{
						Pos:    at(2, 1),
						Target: Variable{Pos: at(2, 7), Name: "greeting"},
					},
				}
			},
		},
		{
			name:  "two statements on one line",
			input: `$x = "a" print($x)`,
			expected: func(at func(int, int) Pos) Program {
				return Program{
					&Assignment{
						Pos:     at(1, 1),
						Target:  Variable{Pos: at(1, 1), Name: "x"},
						Literal: "a",
					},
					&Print{
						Pos:    at(1, 10),
						Target: Variable{Pos: at(1, 16), Name: "x"},
					},
				}
			},
		},
		{
			name:  "spaced print",
			input: "  print ( $x ) ",
			expected: func(at func(int, int) Pos) Program {
				return Program{
					&Print{
						Pos:    at(1, 3),
						Target: Variable{Pos: at(1, 11), Name: "x"},
					},
				}
			},
		},
		{
			name:  "assignment across lines",
			input: "\n$a\n=\n\t\"v w\"\n\n",
			expected: func(at func(int, int) Pos) Program {
				return Program{
					&Assignment{
						Pos:     at(2, 1),
						Target:  Variable{Pos: at(2, 1), Name: "a"},
						Literal: "v w",
					},
				}
			},
		},
		{
			name:  "empty",
			input: "",
			expected: func(at func(int, int) Pos) Program {
				return nil
			},
		},
		{
			name:  "whitespace only",
			input: " \t\r\n\n ",
			expected: func(at func(int, int) Pos) Program {
				return nil
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := NewSource("test", test.input)
			program, err := Parse(NewLexer(source))
			if err != nil {
				t.Fatal(err)
			}
			expected := test.expected(func(line, col int) Pos {
				return Pos{Source: source, Line: line, Column: col}
			})
			if diff := pretty.Compare(program, expected); diff != "" {
				t.Fatalf("AST did not match expected:\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{`x = "a"`, ErrUnexpectedToken},
		{`=`, ErrUnexpectedToken},
		{`"a"`, ErrUnexpectedToken},
		{`$x "a"`, ErrExpectedToken},
		{`$x = y`, ErrExpectedToken},
		{`$x =`, ErrExpectedToken},
		{`$ x = "a"`, ErrExpectedToken},
		{`print $x`, ErrExpectedToken},
		{`print($x`, ErrExpectedToken},
		{`print("a")`, ErrExpectedToken},
		{`$print = "a"`, ErrExpectedToken},
		{`$^x = "a"`, ErrInvalidName},
		{"print($`x)", ErrInvalidName},
		{`$x = "a`, ErrUnterminatedString},
		{`$x = "a" ; print($x)`, ErrUnexpectedCharacter},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			program, err := Parse(NewLexer(NewSource("test", test.input)))
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v, got %v", test.err, err)
			}
			if program != nil {
				t.Fatalf("expected no program, got %v", program)
			}
		})
	}
}

func TestParseTokenSlice(t *testing.T) {
	program, err := Parse(NewSliceTokenStream([]Token{
		{Kind: TokenPrint, Text: "print"},
		{Kind: TokenLeftBracket},
		{Kind: TokenVarPrefix},
		{Kind: TokenName, Text: "foo"},
		{Kind: TokenRightBracket},
		{Kind: TokenVarPrefix},
		{Kind: TokenName, Text: "foo"},
		{Kind: TokenEqual},
		{Kind: TokenString, Text: "bar"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Compare(program, Program{
		&Print{Target: Variable{Name: "foo"}},
		&Assignment{Target: Variable{Name: "foo"}, Literal: "bar"},
	}); diff != "" {
		t.Fatalf("AST did not match expected:\n%s", diff)
	}
}

func TestIsValidName(t *testing.T) {
	for name, valid := range map[string]bool{
		"x":     true,
		"_":     true,
		"_a1":   true,
		"Abc_9": true,
		"":      false,
		"1a":    false,
		"^a":    false,
		"a[":    false,
		"a`b":   false,
	} {
		if got := isValidName(name); got != valid {
			t.Errorf("%q: expected %v, got %v", name, valid, got)
		}
	}
}
