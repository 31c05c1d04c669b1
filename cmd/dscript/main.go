package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/reusee/dscope"
	"github.com/reusee/dscript/cmds"
	"github.com/reusee/dscript/configs"
	"github.com/reusee/dscript/modes"
	"github.com/reusee/dscript/runs"
)

var errNoScript = errors.New("usage: dscript [switches...] <script>")

func main() {
	switches, path, err := splitArgs(os.Args[1:], cmds.Defined)
	if err != nil {
		fail(err)
	}
	if err := cmds.Execute(switches); err != nil {
		fail(err)
	}
	if path == "" {
		fail(errNoScript)
	}

	scope := dscope.New(
		new(runs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		runFile runs.RunFile,
		getSettings configs.GetSettings,
	) {
		if settings, err := getSettings(); err == nil && settings.Color != nil && !*settings.Color {
			color.NoColor = true
		}
		if err := runFile(context.Background(), path); err != nil {
			fail(err)
		}
	})
}

// splitArgs takes the last argument as the script path unless it names a
// command, like -h.
func splitArgs(args []string, isCommand func(string) bool) (switches []string, path string, err error) {
	if len(args) == 0 {
		return nil, "", errNoScript
	}
	last := args[len(args)-1]
	if isCommand(last) {
		return args, "", nil
	}
	return args[:len(args)-1], last, nil
}

func fail(err error) {
	fmt.Fprintf(color.Error, "%s %v\n", color.RedString("error:"), err)
	os.Exit(1)
}
