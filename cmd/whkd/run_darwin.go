package main

import (
	"context"

	"golang.design/x/hotkey/mainthread"

	"github.com/bnema/whkd/internal/cli/cmd"
)

// run hands the main thread to the hotkey event loop, which Cocoa requires,
// and runs the command on another goroutine.
func run(ctx context.Context) int {
	code := 0
	mainthread.Init(func() {
		code = cmd.Execute(ctx)
	})
	return code
}
