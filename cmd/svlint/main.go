// Command svlint lints SystemVerilog source files against the
// registered style rules.
package main

import (
	"fmt"
	"os"

	"github.com/hdltools/svcore/internal/lintcli"

	_ "github.com/hdltools/svcore/lint/rules/generatelabel"
	_ "github.com/hdltools/svcore/lint/rules/namingstyle"
	_ "github.com/hdltools/svcore/lint/rules/undersizedbinary"
)

func main() {
	if err := lintcli.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(lintcli.ExitError)
	}
}
