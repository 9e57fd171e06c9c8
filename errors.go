// File: uci/errors.go
package uci

import "errors"

var (
	// ErrConfigAlreadyLoaded is returned by LoadConfig when a config of
	// the same name is cached and no force reload was requested.
	ErrConfigAlreadyLoaded = errors.New("already loaded")

	// ErrSectionNotFound is returned when a section lookup fails.
	ErrSectionNotFound = errors.New("section not found")

	// ErrOptionNotFound is returned when an option lookup fails.
	ErrOptionNotFound = errors.New("option not found")

	// ErrIndexOutOfBounds is returned when a positional section selector
	// resolves outside the range of sections of that type.
	ErrIndexOutOfBounds = errors.New("invalid name: index out of bounds")
)
