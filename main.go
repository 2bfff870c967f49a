package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sv3tluv/sheetgen/internal"
)

const usage = "usage: sheetgen [-config=file.yaml] [-base=dir] [-target=header|split|go] " +
	"[-header=path] [-source=path] [-output=path] [-package=name] [-sentinel=text] <descriptor>..."

func main() {
	if err := internal.Run(os.Args[1:], os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "sheetgen: %v\n", err)
	if errors.Is(err, internal.ErrUsage) {
		_, _ = fmt.Fprintln(os.Stderr, usage)
	}
	os.Exit(internal.ExitCode(err))
}
