package element

import "errors"

// Sentinel errors for the element package.
var (
	// ErrIncompatibleSize indicates an operation between two DiscreteElements
	// whose frame size n differs.
	ErrIncompatibleSize = errors.New("element: incompatible frame size")

	// ErrOutOfRange indicates a non-positive or too-small n, an out-of-range
	// atom index, or a candidate bit pattern with bits set above n-1.
	ErrOutOfRange = errors.New("element: value out of range")

	// ErrUnknownLabel indicates FromLabels was given a label absent from the
	// supplied ReferenceList.
	ErrUnknownLabel = errors.New("element: label not found in reference list")
)
