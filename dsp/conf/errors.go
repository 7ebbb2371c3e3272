package conf

import "errors"

var (
	// ErrNotFound reports an unregistered path.
	ErrNotFound = errors.New("conf: path not found")
	// ErrDuplicate reports a path registered twice.
	ErrDuplicate = errors.New("conf: duplicate path")
	// ErrPath reports a malformed path.
	ErrPath = errors.New("conf: invalid path")
	// ErrInvalid reports a value rejected by validation.
	ErrInvalid = errors.New("conf: invalid value")
	// ErrUnset reports a Setting that was never stored.
	ErrUnset = errors.New("conf: setting has no value")
)
