//go:build !linux

package mpris

// Adapter does nothing outside Linux; Commands never delivers.
type Adapter struct {
	*state
}

// New returns an adapter that is never reachable over D-Bus.
func New() (*Adapter, error) {
	return &Adapter{state: newState()}, nil
}

// Close is a no-op.
func (a *Adapter) Close() error {
	return nil
}
