package runs

import (
	"context"
	"fmt"

	"github.com/reusee/dscript/configs"
	"github.com/reusee/dscript/debugs"
	"github.com/reusee/dscript/dslang"
	"github.com/reusee/dscript/logs"
	"github.com/reusee/dscript/sources"
	"github.com/reusee/dscript/vars"
)

type RunFile func(ctx context.Context, path string) error

func (Module) RunFile(
	load sources.Load,
	getSettings configs.GetSettings,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	stdout Stdout,
	dumpWriter DumpWriter,
) RunFile {
	return func(ctx context.Context, path string) error {
		ctx, _ = newSpan(ctx, "")

		settings, err := getSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		if err := logs.SetDefaultLevel(settings.LogLevel); err != nil {
			return fmt.Errorf("settings: %w", err)
		}

		source, err := load(path)
		if err != nil {
			return err
		}

		if vars.FirstNonZero(*dumpTokensFlag, vars.DerefOrZero(settings.DumpTokens)) {
			if err := dumpTokens(dumpWriter, source); err != nil {
				return err
			}
		}

		interp := dslang.NewInterpreter(dslang.NewLexer(source), stdout)
		err = interp.Execute()
		if err != nil {
			logger.DebugContext(ctx, "execute failed",
				"path", path,
				"error", err,
			)
		} else {
			logger.DebugContext(ctx, "executed",
				"path", path,
				"statements", len(interp.Program()),
			)
		}

		// nothing ran if the source did not parse
		if err != nil && interp.Program() == nil {
			return err
		}

		if vars.FirstNonZero(*dumpASTFlag, vars.DerefOrZero(settings.DumpAST)) {
			if err := dumpAST(dumpWriter, interp.Program()); err != nil {
				return err
			}
		}
		if vars.FirstNonZero(*dumpEnvFlag, vars.DerefOrZero(settings.DumpEnv)) {
			if _, err := fmt.Fprintln(dumpWriter, interp.String()); err != nil {
				return err
			}
		}
		if *tapFlag {
			globals := map[string]any{
				"program": interp.Program(),
				"env":     interp.Globals(),
				"lookup": func(name string) string {
					return interp.Globals()[name]
				},
			}
			tap(ctx, path, globals)
		}

		return err
	}
}
