package models

import "errors"

var (
	// ErrKeyLoad covers every deserialization failure: unreadable file,
	// malformed PEM, wrong or missing password, unexpected key type.
	ErrKeyLoad = errors.New("key load failed")

	// ErrUnsupportedOperation is returned by declared-but-unimplemented
	// operations so callers cannot mistake silence for success.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidParameter is returned for generation parameters outside the
	// accepted range.
	ErrInvalidParameter = errors.New("invalid parameter")
)
