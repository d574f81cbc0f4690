package config

import (
	"context"
	"fmt"
	"os"
)

// WhkdrcFile reads a whkdrc from disk. It implements port.WhkdrcSource.
type WhkdrcFile struct {
	path string
}

// NewWhkdrcFile creates a source for path.
func NewWhkdrcFile(path string) *WhkdrcFile {
	return &WhkdrcFile{path: path}
}

// Path returns the file path.
func (f *WhkdrcFile) Path() string {
	return f.path
}

// Read returns the file contents.
func (f *WhkdrcFile) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read whkdrc: %w", err)
	}
	return string(data), nil
}
