package sources

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/dscript/dslang"
	"github.com/reusee/dscript/logs"
	"github.com/spf13/afero"
)

var (
	ErrRead   = errors.New("read source")
	ErrDecode = errors.New("source is not valid UTF-8")
)

type Load func(path string) (*dslang.Source, error)

func (Module) Load(
	fs Fs,
	logger logs.Logger,
) Load {
	return func(path string) (*dslang.Source, error) {
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if !utf8.Valid(content) {
			return nil, fmt.Errorf("%w: %s", ErrDecode, path)
		}
		source := dslang.NewSource(path, string(content))
		logger.Debug("source loaded",
			"path", path,
			"bytes", len(content),
			"lines", len(source.Lines),
		)
		return source, nil
	}
}
