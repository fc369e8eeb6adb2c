package storage

import "errors"

var (
	ErrEmptyKey = errors.New("storage key must not be empty")
	ErrClosed   = errors.New("storage is closed")
)
