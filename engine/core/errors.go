package core

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned by constructors and bulk operations when an
	// argument fails validation (empty point sets, short buffers, bad projection
	// parameters).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned by indexed accessors.
	ErrOutOfRange = errors.New("index out of range")
	ErrUnknown    = errors.New("unknown")
)
