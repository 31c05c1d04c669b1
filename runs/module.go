package runs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/dscript/configs"
	"github.com/reusee/dscript/debugs"
	"github.com/reusee/dscript/logs"
	"github.com/reusee/dscript/sources"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
	Sources sources.Module
	Debugs  debugs.Module
}

// Stdout receives the output of print statements.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// DumpWriter receives token, AST and environment dumps.
type DumpWriter io.Writer

func (Module) DumpWriter() DumpWriter {
	return os.Stderr
}
