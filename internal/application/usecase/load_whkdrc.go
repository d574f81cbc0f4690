package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/logging"
	"github.com/bnema/whkd/internal/parser"
)

// ConfigError reports a whkdrc that could not be read or parsed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("whkdrc %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadWhkdrcUseCase reads and parses a whkdrc.
type LoadWhkdrcUseCase struct {
	source port.WhkdrcSource
}

// NewLoadWhkdrcUseCase creates a new LoadWhkdrcUseCase.
func NewLoadWhkdrcUseCase(source port.WhkdrcSource) *LoadWhkdrcUseCase {
	return &LoadWhkdrcUseCase{source: source}
}

// Execute returns the parsed document or a *ConfigError.
func (uc *LoadWhkdrcUseCase) Execute(ctx context.Context) (*entity.Whkdrc, error) {
	log := logging.FromContext(ctx)
	path := uc.source.Path()

	text, err := uc.source.Read(ctx)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	doc, err := parser.Parse(text)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	log.Info().
		Str("path", path).
		Str("shell", string(doc.Shell)).
		Int("bindings", len(doc.Bindings)).
		Int("app_bindings", len(doc.AppBindings)).
		Msg("loaded whkdrc")

	return doc, nil
}
