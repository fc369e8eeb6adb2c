package form

import "errors"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownUnit  = errors.New("unknown duration unit")
)
