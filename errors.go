package govconf

import (
	"errors"
	"fmt"
)

var (
	ErrNoURL              = errors.New("govconf: server url is nil, cannot init")
	ErrNotInitialized     = errors.New("govconf: not initialized")
	ErrAlreadyInitialized = errors.New("govconf: already initialized")
	ErrEmptyKey           = errors.New("govconf: key cannot be empty")
	ErrEmptyValue         = errors.New("govconf: value cannot be empty")
)

// StoreError reports a failure of the underlying store. Absent keys are not
// errors; they are reported with ok=false.
type StoreError struct {
	Op   string // "get", "set" or "delete"
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("govconf: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// UnsupportedProtocolError is returned by DefaultDialer for unknown URL protocols.
type UnsupportedProtocolError struct {
	Protocol string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("govconf: unsupported protocol %q", e.Protocol)
}
