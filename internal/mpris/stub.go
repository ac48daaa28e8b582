//go:build !linux

package mpris

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New() (*Adapter, error) {
	return &Adapter{}, nil
}

// Commands returns a channel that never delivers.
func (a *Adapter) Commands() <-chan Command { return nil }

// Publish is a no-op on non-Linux platforms.
func (a *Adapter) Publish(_ Status) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
