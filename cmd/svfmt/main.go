// Command svfmt formats SystemVerilog source files using the layout
// optimiser and tree reconstructor.
package main

import (
	"fmt"
	"os"

	"github.com/hdltools/svcore/internal/fmtcli"
)

func main() {
	if err := fmtcli.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
