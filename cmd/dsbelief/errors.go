package main

import "errors"

var (
	// ErrBadFocalSpec indicates a --source flag could not be parsed as a
	// comma-separated list of "bitmask:value" pairs.
	ErrBadFocalSpec = errors.New("dsbelief: malformed focal spec")

	// ErrNoSources indicates a command requiring at least one --source flag
	// received none.
	ErrNoSources = errors.New("dsbelief: at least one --source is required")
)
