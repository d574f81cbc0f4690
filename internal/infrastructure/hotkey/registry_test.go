package hotkey_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/infrastructure/hotkey"
	mock_hotkey "github.com/bnema/whkd/internal/infrastructure/hotkey/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectGrab wires a mock grab whose Keydown channel is recreated on every
// Register and closed on Unregister, like the OS backend. It returns a func
// that simulates a key press on the current registration.
func expectGrab(grab *mock_hotkey.MockGrab) func() {
	var current chan struct{}
	grab.EXPECT().Register().DoAndReturn(func() error {
		current = make(chan struct{}, 1)
		return nil
	}).AnyTimes()
	grab.EXPECT().Keydown().DoAndReturn(func() <-chan struct{} {
		return current
	}).AnyTimes()
	grab.EXPECT().Unregister().DoAndReturn(func() error {
		close(current)
		return nil
	}).AnyTimes()
	return func() { current <- struct{}{} }
}

func receive(t *testing.T, events <-chan port.HotkeyHandle) port.HotkeyHandle {
	t.Helper()
	select {
	case h := <-events:
		return h
	case <-time.After(time.Second):
		t.Fatal("no hotkey event")
		return 0
	}
}

func TestRegistry_RegisterDeliversEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock_hotkey.NewMockBackend(ctrl)
	grabH := mock_hotkey.NewMockGrab(ctrl)
	grabJ := mock_hotkey.NewMockGrab(ctrl)
	pressH := expectGrab(grabH)
	pressJ := expectGrab(grabJ)

	backend.EXPECT().Grab(entity.ModAlt, entity.KeyCode("KeyH")).Return(grabH, nil)
	backend.EXPECT().Grab(entity.ModAlt, entity.KeyCode("KeyJ")).Return(grabJ, nil)

	reg := hotkey.NewRegistry(backend)
	defer reg.Close()

	h, err := reg.Create(entity.ModAlt, "KeyH")
	require.NoError(t, err)
	j, err := reg.Create(entity.ModAlt, "KeyJ")
	require.NoError(t, err)
	assert.NotEqual(t, h, j)

	require.NoError(t, reg.Register(h))
	require.NoError(t, reg.Register(j))
	assert.True(t, reg.Registered(h))

	pressH()
	assert.Equal(t, h, receive(t, reg.Events()))
	pressJ()
	assert.Equal(t, j, receive(t, reg.Events()))
}

func TestRegistry_ReRegisterUsesNewChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock_hotkey.NewMockBackend(ctrl)
	grab := mock_hotkey.NewMockGrab(ctrl)
	press := expectGrab(grab)
	backend.EXPECT().Grab(entity.ModCtrl, entity.KeyCode("F5")).Return(grab, nil)

	reg := hotkey.NewRegistry(backend)
	defer reg.Close()

	h, err := reg.Create(entity.ModCtrl, "F5")
	require.NoError(t, err)

	for i := range 3 {
		require.NoError(t, reg.Register(h), "round %d", i)
		require.NoError(t, reg.Register(h), "second register is a no-op")
		press()
		assert.Equal(t, h, receive(t, reg.Events()))
		require.NoError(t, reg.Unregister(h))
		require.NoError(t, reg.Unregister(h), "second unregister is a no-op")
		assert.False(t, reg.Registered(h))
	}
}

func TestRegistry_RegisterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock_hotkey.NewMockBackend(ctrl)
	grab := mock_hotkey.NewMockGrab(ctrl)
	backend.EXPECT().Grab(entity.ModSuper, entity.KeyCode("KeyL")).Return(grab, nil)
	grab.EXPECT().Register().Return(errors.New("BadAccess"))

	reg := hotkey.NewRegistry(backend)
	defer reg.Close()

	h, err := reg.Create(entity.ModSuper, "KeyL")
	require.NoError(t, err)

	err = reg.Register(h)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrHotkeyUnavailable)
	assert.Contains(t, err.Error(), "super+KeyL")
	assert.False(t, reg.Registered(h))
}

func TestRegistry_CreateUnsupportedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock_hotkey.NewMockBackend(ctrl)
	backend.EXPECT().Grab(entity.ModNone, entity.KeyCode("F24")).
		Return(nil, fmt.Errorf("%w: F24", port.ErrUnsupportedKey))

	reg := hotkey.NewRegistry(backend)
	defer reg.Close()

	_, err := reg.Create(entity.ModNone, "F24")
	assert.ErrorIs(t, err, port.ErrUnsupportedKey)
}

func TestRegistry_UnknownHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := hotkey.NewRegistry(mock_hotkey.NewMockBackend(ctrl))
	defer reg.Close()

	assert.ErrorIs(t, reg.Register(42), port.ErrUnknownHandle)
	assert.ErrorIs(t, reg.Unregister(42), port.ErrUnknownHandle)
	assert.ErrorIs(t, reg.Release(42), port.ErrUnknownHandle)
}

func TestRegistry_ReleaseForgetsHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock_hotkey.NewMockBackend(ctrl)
	grab := mock_hotkey.NewMockGrab(ctrl)
	expectGrab(grab)
	backend.EXPECT().Grab(entity.ModAlt, entity.KeyCode("Enter")).Return(grab, nil)

	reg := hotkey.NewRegistry(backend)
	defer reg.Close()

	h, err := reg.Create(entity.ModAlt, "Enter")
	require.NoError(t, err)
	require.NoError(t, reg.Register(h))

	require.NoError(t, reg.Release(h))
	assert.False(t, reg.Registered(h))
	assert.ErrorIs(t, reg.Register(h), port.ErrUnknownHandle)
}

func TestRegistry_CloseUnregistersAndClosesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock_hotkey.NewMockBackend(ctrl)
	grab := mock_hotkey.NewMockGrab(ctrl)
	backend.EXPECT().Grab(entity.ModAlt, entity.KeyCode("KeyQ")).Return(grab, nil).Times(2)

	keydown := make(chan struct{})
	grab.EXPECT().Register().Return(nil)
	grab.EXPECT().Keydown().DoAndReturn(func() <-chan struct{} { return keydown })
	grab.EXPECT().Unregister().DoAndReturn(func() error {
		close(keydown)
		return nil
	}).Times(1)

	reg := hotkey.NewRegistry(backend)
	h, err := reg.Create(entity.ModAlt, "KeyQ")
	require.NoError(t, err)
	require.NoError(t, reg.Register(h))

	require.NoError(t, reg.Close())
	require.NoError(t, reg.Close())

	_, ok := <-reg.Events()
	assert.False(t, ok)

	_, err = reg.Create(entity.ModAlt, "KeyQ")
	assert.Error(t, err)
}
