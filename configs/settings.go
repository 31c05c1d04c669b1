package configs

import (
	"errors"
	"sync"
)

const SettingsSchema = `
dscript?: close({
	log_level?:   "debug" | "info" | "warn" | "error"
	dump_tokens?: bool
	dump_ast?:    bool
	dump_env?:    bool
	color?:       bool
})
`

type Settings struct {
	LogLevel   string `json:"log_level"`
	DumpTokens *bool  `json:"dump_tokens"`
	DumpAST    *bool  `json:"dump_ast"`
	DumpEnv    *bool  `json:"dump_env"`
	Color      *bool  `json:"color"`
}

const SettingsPath = "dscript"

type GetSettings func() (Settings, error)

func (Module) GetSettings(
	loader Loader,
) GetSettings {
	return sync.OnceValues(func() (ret Settings, err error) {
		err = loader.AssignFirst(SettingsPath, &ret)
		if errors.Is(err, ErrValueNotFound) {
			err = nil
		}
		return
	})
}
