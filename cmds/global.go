package cmds

import "io"

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Defined(name string) bool {
	return GlobalExecutor.Defined(name)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func PrintUsage(w io.Writer) {
	GlobalExecutor.PrintUsage(w)
}
