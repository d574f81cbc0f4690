package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	StateDir() (string, error)
	LogDir() (string, error)
	ManDir() (string, error)
}
