//go:build linux || windows || darwin

package osbackend

import (
	"testing"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKey_CommonKeys(t *testing.T) {
	for _, key := range []entity.KeyCode{"KeyA", "KeyZ", "Digit0", "Digit9", "F1", "F20", "Space", "Enter", "Escape", "Tab", "ArrowLeft"} {
		_, ok := lookupKey(key)
		assert.True(t, ok, "key %s", key)
		assert.True(t, Supports(key))
	}
}

func TestLookupKey_PlatformKeys(t *testing.T) {
	for _, key := range []entity.KeyCode{"Home", "End", "PageUp", "PageDown", "Minus", "Comma", "Numpad5"} {
		_, ok := lookupKey(key)
		assert.True(t, ok, "key %s", key)
	}
}

func TestLookupKey_BackspaceIsNotDelete(t *testing.T) {
	backspace, ok := lookupKey("Backspace")
	require.True(t, ok)
	del, ok := lookupKey("Delete")
	require.True(t, ok)
	assert.NotEqual(t, backspace, del)
}

func TestLookupKey_Unknown(t *testing.T) {
	_, ok := lookupKey("KeyAA")
	assert.False(t, ok)
}

func TestModifiers_AllMapped(t *testing.T) {
	for _, m := range (entity.ModCtrl | entity.ModAlt | entity.ModShift | entity.ModSuper).List() {
		_, ok := modifiers[m]
		assert.True(t, ok, "modifier %s", m)
	}
}

func TestBackend_GrabUnsupportedKey(t *testing.T) {
	_, err := New().Grab(entity.ModAlt, "Nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrUnsupportedKey)
}
