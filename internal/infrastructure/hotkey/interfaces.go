package hotkey

import "github.com/bnema/whkd/internal/domain/entity"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_backend.go

// Backend creates OS level key grabs.
type Backend interface {
	// Grab prepares a grab for mods+key without registering it. It returns an
	// error wrapping port.ErrUnsupportedKey when the platform cannot express key.
	Grab(mods entity.Modifier, key entity.KeyCode) (Grab, error)
}

// Grab is one OS hotkey.
type Grab interface {
	Register() error
	Unregister() error
	// Keydown delivers one value per key press for the current registration.
	// The channel is replaced on every Register and closed by Unregister.
	Keydown() <-chan struct{}
}
