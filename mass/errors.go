package mass

import "errors"

// Epsilon is the numerical-precision constant governing Clean's drop
// threshold and HasValidSum's tolerance.
const Epsilon = 2e-6

// Sentinel errors for the mass package.
var (
	// ErrIncompatibleFrame indicates an element or MassFunction argument is
	// incompatible with the receiver's (first-focal-pinned) frame.
	ErrIncompatibleFrame = errors.New("mass: incompatible frame")

	// ErrEmptyFunction indicates an operation that requires at least one
	// focal (Normalise, Conditioning, Combination, Distance, Support,
	// AutoConflict) was called on a MassFunction with no focals.
	ErrEmptyFunction = errors.New("mass: mass function has no focals")

	// ErrEmptyElement indicates Conditioning was called on the empty element.
	ErrEmptyElement = errors.New("mass: conditioning element is empty")

	// ErrOutOfRange indicates an alpha outside [0,1], a maxCard <= 0, or an
	// autoConflict degree <= 0.
	ErrOutOfRange = errors.New("mass: value out of range")

	// ErrNotEnoughInputs indicates a combination facade was called with
	// fewer than two mass functions.
	ErrNotEnoughInputs = errors.New("mass: at least two mass functions required")

	// ErrTotalConflict indicates a Dempster combination whose accumulated
	// empty mass equals 1.
	ErrTotalConflict = errors.New("mass: total conflict between sources")

	// ErrUnsupportedRule indicates Combine was called with an unrecognised
	// Rule tag.
	ErrUnsupportedRule = errors.New("mass: unsupported combination rule")
)
