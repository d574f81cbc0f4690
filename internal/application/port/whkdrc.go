package port

import "context"

// WhkdrcSource provides the raw text of a whkdrc.
type WhkdrcSource interface {
	Read(ctx context.Context) (string, error)
	// Path identifies the source in error messages.
	Path() string
}
