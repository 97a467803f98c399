// Package store provides key-value blob stores the grants are persisted in.
//
// Both stores return a nil value and no error for a key that has never been set.
package store

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/rsu"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a BlobStore that must be closed after use.
type Store interface {
	rsu.BlobStore
	io.Closer
}

// Open opens the store named backend at path.
//
// path is a directory for the file backend, and a database file for sqlite.
func Open(backend, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch backend {
	case BackendFile, "":
		s, err = NewFile(path)
	case BackendSQLite:
		s, err = NewSQLite(path)
	default:
		return nil, fmt.Errorf("%w %q, want %q or %q", ErrUnknownBackend, backend, BackendFile, BackendSQLite)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
