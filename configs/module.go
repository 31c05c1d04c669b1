package configs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/dscript/cmds"
	"github.com/reusee/dscript/sources"
	"github.com/spf13/afero"
)

type Module struct {
	dscope.Module
	Sources sources.Module
}

const DefaultFile = "dscript.cue"

var extraFiles = cmds.Collect[string]("-config")

func init() {
	cmds.Define("-config.", cmds.Func(func() {
		*extraFiles = nil
	}).Desc("ignore config files given before"))
}

// Files lists the config files to load, later files have lower priority.
type Files []string

func (Module) Files(
	fs sources.Fs,
) Files {
	var ret Files
	ret = append(ret, *extraFiles...)
	if ok, _ := afero.Exists(fs, DefaultFile); ok {
		ret = append(ret, DefaultFile)
	}
	return ret
}

func (Module) Loader(
	fs sources.Fs,
	files Files,
) Loader {
	return NewLoader(fs, files, SettingsSchema)
}
