package runs

import (
	"fmt"
	"io"
	"regexp"

	"github.com/reusee/dscript/cmds"
	"github.com/reusee/dscript/dslang"
	"github.com/sanity-io/litter"
)

var (
	dumpTokensFlag = cmds.Switch("-dump-tokens")
	dumpASTFlag    = cmds.Switch("-dump-ast")
	dumpEnvFlag    = cmds.Switch("-dump-env")
	tapFlag        = cmds.Switch("-tap")
)

var astDumper = &litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
	FieldExclusions:   regexp.MustCompile(`^Source$`),
}

func dumpTokens(w io.Writer, source *dslang.Source) error {
	for token, err := range dslang.NewLexer(source).Tokens() {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\n", token.Pos.Line, token.Pos.Column, token); err != nil {
			return err
		}
	}
	return nil
}

func dumpAST(w io.Writer, program dslang.Program) error {
	_, err := fmt.Fprintln(w, astDumper.Sdump(program))
	return err
}
