package dslang

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func run(input string) (string, *Interpreter, error) {
	buf := new(bytes.Buffer)
	interp := NewInterpreter(NewLexer(NewSource("test", input)), buf)
	err := interp.Execute()
	return buf.String(), interp, err
}

func TestInterpreter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"greeting", "$greeting = \"hello\"\nprint($greeting)", "hello\n"},
		{"reassign", "$a = \"1\"\n$a = \"2\"\nprint($a)", "2\n"},
		{"same line", `$x = "a" print($x)`, "a\n"},
		{"empty", "", ""},
		{"blank lines", "\n\n\n", ""},
		{"verbatim", `$s = "  $x = 'y' \t print(\z) é " print($s)`, "  $x = 'y' \\t print(\\z) é \n"},
		{"empty literal", `$e = "" print($e) print($e)`, "\n\n"},
		{"crlf", "$a = \"x\"\r\nprint($a)\r\n", "x\n"},
		{
			"order",
			"$a = \"1\" $b = \"2\"\nprint($b) print($a)\n$a = \"3\"\nprint($a)",
			"2\n1\n3\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			output, _, err := run(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if output != test.output {
				t.Fatalf("expected %q, got %q", test.output, output)
			}
		})
	}
}

func TestInterpreterUnbound(t *testing.T) {
	output, _, err := run("print($missing)")
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("got %v", err)
	}
	if output != "" {
		t.Fatalf("got %q", output)
	}

	// statements before the failing one have run
	output, _, err = run(`$a = "x" print($a) print($b) print($a)`)
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("got %v", err)
	}
	if output != "x\n" {
		t.Fatalf("got %q", output)
	}
}

func TestInterpreterParsesBeforeRunning(t *testing.T) {
	output, interp, err := run("$a = \"x\"\nprint($a)\nprint(")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("got %v", err)
	}
	if output != "" {
		t.Fatalf("got %q", output)
	}
	if len(interp.Globals()) != 0 {
		t.Fatalf("got %v", interp.Globals())
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestInterpreterOutputError(t *testing.T) {
	interp := NewInterpreter(NewLexer(NewSource("test", `$a = "x" print($a)`)), failingWriter{})
	err := interp.Execute()
	if !errors.Is(err, ErrOutput) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, errWrite) {
		t.Fatalf("got %v", err)
	}
}

func TestInterpreterString(t *testing.T) {
	_, interp, err := run(`$b = "2" $a = "1" $b = "3"`)
	if err != nil {
		t.Fatal(err)
	}
	if str := interp.String(); str != "(Interpreter: map[a:1 b:3])" {
		t.Fatalf("got %s", str)
	}
	if len(interp.Program()) != 3 {
		t.Fatalf("got %v", interp.Program())
	}
	globals := interp.Globals()
	globals["a"] = "changed"
	if v, _ := interp.env.Get("a"); v != "1" {
		t.Fatalf("got %v", v)
	}
}

func TestPosErrorMessage(t *testing.T) {
	_, _, err := run("$a = \"x\"\n  print($b)")
	if err == nil {
		t.Fatal("should error")
	}
	expected := strings.Join([]string{
		"runtime error: unbound variable $b at test:2:9",
		"  print($b)",
		"        ^",
	}, "\n")
	if err.Error() != expected {
		t.Fatalf("got\n%s", err.Error())
	}
}
