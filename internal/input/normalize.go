// Package input turns parsed bindings into hotkey descriptors and drives the
// mode state machine that keeps OS registrations in sync with the active mode.
package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/logging"
)

// Normalization errors.
var (
	ErrEmptyBinding    = errors.New("binding has no keys")
	ErrUnknownKey      = errors.New("unknown key")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// NormalizationError reports which binding failed to normalize.
type NormalizationError struct {
	// Index is the position of the binding in the input slice.
	Index   int
	Binding entity.HotkeyBinding
	Err     error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("binding %d (%s): %v", e.Index+1, e.Binding.Combo(), e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// Normalizer converts bindings to descriptors.
type Normalizer struct {
	// Strict rejects unknown modifier tokens instead of ignoring them.
	Strict bool
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(strict bool) *Normalizer {
	return &Normalizer{Strict: strict}
}

// Normalize converts one binding. The last key token is the trigger, the
// others are modifiers.
func (n *Normalizer) Normalize(ctx context.Context, b entity.HotkeyBinding) (entity.Descriptor, error) {
	if len(b.Keys) == 0 {
		return entity.Descriptor{}, ErrEmptyBinding
	}

	trigger := b.Keys[len(b.Keys)-1]
	key, ok := lookupKey(trigger)
	if !ok {
		return entity.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownKey, trigger)
	}

	var mods entity.Modifier
	for _, tok := range b.Keys[:len(b.Keys)-1] {
		m, ok := lookupModifier(tok)
		if !ok {
			if n.Strict {
				return entity.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownModifier, tok)
			}
			logging.FromContext(ctx).Warn().
				Str("modifier", tok).
				Str("binding", b.Combo()).
				Msg("ignoring unknown modifier")
			continue
		}
		mods |= m
	}

	d := entity.Descriptor{
		HotkeyID: entity.HotkeyID{
			Mode:      b.Mode,
			Modifiers: mods,
			Key:       key,
		},
		Command:     b.Command,
		Action:      b.Action,
		ProcessName: b.ProcessName,
	}
	if err := d.Validate(); err != nil {
		return entity.Descriptor{}, err
	}
	return d, nil
}

// NormalizeAll converts every binding, stopping at the first failure.
func (n *Normalizer) NormalizeAll(ctx context.Context, bindings []entity.HotkeyBinding) ([]entity.Descriptor, error) {
	out := make([]entity.Descriptor, 0, len(bindings))
	for i, b := range bindings {
		d, err := n.Normalize(ctx, b)
		if err != nil {
			return nil, &NormalizationError{Index: i, Binding: b, Err: err}
		}
		out = append(out, d)
	}
	return out, nil
}
