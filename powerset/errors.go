package powerset

import "errors"

// Sentinel errors for the powerset package.
var (
	// ErrIncompatibleFrame indicates an element added to, or compared
	// against, a Set is incompatible with the Set's first element.
	ErrIncompatibleFrame = errors.New("powerset: incompatible frame")

	// ErrOutOfRange indicates a non-positive maxCard or frame size.
	ErrOutOfRange = errors.New("powerset: value out of range")
)
