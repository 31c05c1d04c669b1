package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/dscript/logs"
	"github.com/spf13/afero"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Fs afero.Fs

func (Module) Fs() Fs {
	return afero.NewOsFs()
}
