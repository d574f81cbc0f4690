package hotkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/infrastructure/hotkey"
)

func TestDryRun_RegisterCycle(t *testing.T) {
	reg := hotkey.NewRegistry(hotkey.NewDryRun(nil))

	h, err := reg.Create(entity.ModAlt, "KeyH")
	require.NoError(t, err)

	for range 2 {
		require.NoError(t, reg.Register(h))
		assert.True(t, reg.Registered(h))
		require.NoError(t, reg.Unregister(h))
		assert.False(t, reg.Registered(h))
	}

	require.NoError(t, reg.Register(h))
	require.NoError(t, reg.Close())

	_, open := <-reg.Events()
	assert.False(t, open)
}

func TestDryRun_UnsupportedKey(t *testing.T) {
	supports := func(key entity.KeyCode) bool { return key != "F24" }
	reg := hotkey.NewRegistry(hotkey.NewDryRun(supports))
	t.Cleanup(func() { _ = reg.Close() })

	_, err := reg.Create(entity.ModNone, "F24")
	assert.ErrorIs(t, err, port.ErrUnsupportedKey)

	_, err = reg.Create(entity.ModNone, "F23")
	assert.NoError(t, err)
}
