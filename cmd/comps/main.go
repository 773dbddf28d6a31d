package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/j-mracek/libcomps/internal/cli"
	"github.com/j-mracek/libcomps/pkg/comps"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(comps.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(comps.ExitCodeForError(err))
	}
}
