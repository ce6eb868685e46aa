package file_system

import "errors"

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no persisted snapshot")

// Store persists the encoded snapshot. Save overwrites whatever was saved
// before.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}
