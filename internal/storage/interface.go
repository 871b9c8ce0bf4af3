package storage

import "errors"

// Backend is a local key-value store holding string values.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access. Get reports ok=false for an absent key.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

var (
	// ErrNotInitialized is returned by Load when the store does not exist yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'daynotes init' first")

	// ErrNotLoaded is returned by key access before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")

	// ErrPersistence wraps every failed write. The caller's in-memory state
	// is left as it was.
	ErrPersistence = errors.New("failed to persist data")

	// ErrCorrupt wraps a stored value that cannot be decoded.
	ErrCorrupt = errors.New("stored data is corrupt")
)
