package logs

import (
	"log/slog"

	"github.com/reusee/dscript/cmds"
)

var (
	level         = new(slog.LevelVar)
	levelFromArgs bool
)

func init() {
	level.Set(slog.LevelWarn)

	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
			levelFromArgs = true
		}).Desc("set log level to "+l.String()))
	}
}

// SetDefaultLevel applies a configured level name. Levels set by command line
// switches take precedence.
func SetDefaultLevel(name string) error {
	if name == "" || levelFromArgs {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return err
	}
	level.Set(l)
	return nil
}

func Level() slog.Level {
	return level.Level()
}
