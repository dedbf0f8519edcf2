package storage

import "errors"

// ErrStorage marks unrecoverable I/O failures from a backend.
var ErrStorage = errors.New("storage failure")

// Backend reads and writes whole collections as JSON documents. A missing
// collection reads as empty, not as an error.
type Backend interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}
