package debugs

import (
	"testing"

	"github.com/reusee/dscript/dslang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	source := dslang.NewSource("test", `$a = "x"`)
	pos := dslang.Pos{Source: source, Line: 1, Column: 1}

	variable := func() *starlark.Dict {
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("type"), starlark.String("Variable"))
		d.SetKey(starlark.String("Pos"), starlark.String("test:1:1"))
		d.SetKey(starlark.String("Name"), starlark.String("a"))
		return d
	}
	assignment := func() *starlark.Dict {
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("type"), starlark.String("Assignment"))
		d.SetKey(starlark.String("Pos"), starlark.String("test:1:1"))
		d.SetKey(starlark.String("Target"), variable())
		d.SetKey(starlark.String("Literal"), starlark.String("x"))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"token kind", dslang.TokenName, starlark.MakeUint64(uint64(dslang.TokenName))},
		{"pos", pos, starlark.String("test:1:1")},
		{"env", map[string]string{"a": "x"}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.String("x"))
			return d
		}()},
		{"assignment", &dslang.Assignment{
			Pos:     pos,
			Target:  dslang.Variable{Pos: pos, Name: "a"},
			Literal: "x",
		}, assignment()},
		{"program", dslang.Program{
			&dslang.Assignment{
				Pos:     pos,
				Target:  dslang.Variable{Pos: pos, Name: "a"},
				Literal: "x",
			},
		}, starlark.NewList([]starlark.Value{assignment()})},
		{"nil pointer", (*dslang.Print)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		value := toStarlarkValue(func(name string) string {
			return name
		})
		if _, ok := value.(starlark.Callable); !ok {
			t.Fatalf("got %T", value)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
