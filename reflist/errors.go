package reflist

import "errors"

// Sentinel errors for the reflist package.
var (
	// ErrDuplicateLabel indicates a label already present in the list was
	// added again.
	ErrDuplicateLabel = errors.New("reflist: duplicate label")

	// ErrEmptyLabel indicates an attempt to add the empty string as a label.
	ErrEmptyLabel = errors.New("reflist: label is empty")

	// ErrOutOfRange indicates an index outside [0,Len) was requested.
	ErrOutOfRange = errors.New("reflist: index out of range")

	// ErrLabelNotFound indicates a label not present in the list was looked up.
	ErrLabelNotFound = errors.New("reflist: label not found")
)
