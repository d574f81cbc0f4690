//go:build !darwin

package main

import (
	"context"

	"github.com/bnema/whkd/internal/cli/cmd"
)

func run(ctx context.Context) int {
	return cmd.Execute(ctx)
}
