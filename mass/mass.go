package mass

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsbelief/element"
)

// MassFunction is an ordered, duplicate-free (by element) list of
// FocalElements. Frame compatibility is pinned by the first focal added,
// the same "first insert pins the mode" pattern this module uses for
// Set[E] and that lvlath's core.Graph uses for its directed/weighted flags.
type MassFunction[E element.Interface[E]] struct {
	focals []FocalElement[E]
}

// Empty returns a MassFunction with no focals.
// Complexity: O(1).
func Empty[E element.Interface[E]]() *MassFunction[E] {
	return &MassFunction[E]{}
}

// FromFocals builds a MassFunction by adding each focal in order via
// AddMass (so repeated elements accumulate rather than error).
// Complexity: O(k^2) for k focals.
func FromFocals[E element.Interface[E]](focals ...FocalElement[E]) (*MassFunction[E], error) {
	m := Empty[E]()
	for _, f := range focals {
		if err := m.AddMass(f.Element, f.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Vacuous returns the Discrete vacuous MassFunction over an n-atom frame:
// a single focal, the complete element, with mass 1.
// Complexity: O(ceil(n/64)).
func Vacuous(n int) (*MassFunction[*element.DiscreteElement], error) {
	c, err := element.Complete(n)
	if err != nil {
		return nil, err
	}
	return FromFocals[*element.DiscreteElement](FocalElement[*element.DiscreteElement]{Element: c, Value: 1})
}

func (m *MassFunction[E]) indexOf(e E) int {
	for i := range m.focals {
		if m.focals[i].Element.Equal(e) {
			return i
		}
	}
	return -1
}

func (m *MassFunction[E]) checkCompatible(e E) error {
	if len(m.focals) > 0 && !m.focals[0].Element.IsCompatible(e) {
		return ErrIncompatibleFrame
	}
	return nil
}

// AddMass adds delta to the value stored for e, appending a new focal if e
// is not already present.
// Returns ErrIncompatibleFrame if the focal set is non-empty and e is
// incompatible with the first focal's element.
// Complexity: O(k) for k current focals.
func (m *MassFunction[E]) AddMass(e E, delta float64) error {
	if err := m.checkCompatible(e); err != nil {
		return fmt.Errorf("mass.AddMass: %w", err)
	}
	if idx := m.indexOf(e); idx >= 0 {
		m.focals[idx].Value += delta
	} else {
		m.focals = append(m.focals, FocalElement[E]{Element: e, Value: delta})
	}
	return nil
}

// RemoveMass subtracts delta from the value stored for e. If e is not
// present it is inserted with value -delta, so that chained
// AddMass/RemoveMass calls (e.g. to compute a difference between two mass
// functions) remain well-defined.
// Returns ErrIncompatibleFrame if the focal set is non-empty and e is
// incompatible with the first focal's element.
// Complexity: O(k).
func (m *MassFunction[E]) RemoveMass(e E, delta float64) error {
	if err := m.checkCompatible(e); err != nil {
		return fmt.Errorf("mass.RemoveMass: %w", err)
	}
	if idx := m.indexOf(e); idx >= 0 {
		m.focals[idx].Value -= delta
	} else {
		m.focals = append(m.focals, FocalElement[E]{Element: e, Value: -delta})
	}
	return nil
}

// Clean drops every focal whose value has magnitude below Epsilon, used
// after combinations to prevent focal-set blow-up from numerical noise.
// Complexity: O(k).
func (m *MassFunction[E]) Clean() {
	out := m.focals[:0]
	for _, f := range m.focals {
		if math.Abs(f.Value) >= Epsilon {
			out = append(out, f)
		}
	}
	m.focals = out
}

// Normalise divides every value by the sum of all values.
// Returns ErrEmptyFunction if the focal set is empty or sums to exactly 0.
// Complexity: O(k).
func (m *MassFunction[E]) Normalise() error {
	if len(m.focals) == 0 {
		return fmt.Errorf("mass.Normalise: %w", ErrEmptyFunction)
	}
	sum := 0.0
	for _, f := range m.focals {
		sum += f.Value
	}
	if sum == 0 {
		return fmt.Errorf("mass.Normalise: %w", ErrEmptyFunction)
	}
	for i := range m.focals {
		m.focals[i].Value /= sum
	}
	return nil
}

// Clear removes every focal, returning the MassFunction to its newly-empty
// state (frame no longer pinned).
// Complexity: O(1).
func (m *MassFunction[E]) Clear() {
	m.focals = nil
}

// Focals returns a defensive copy of the current focal list, in insertion
// order.
// Complexity: O(k).
func (m *MassFunction[E]) Focals() []FocalElement[E] {
	out := make([]FocalElement[E], len(m.focals))
	copy(out, m.focals)
	return out
}

// Len returns the number of focals.
// Complexity: O(1).
func (m *MassFunction[E]) Len() int { return len(m.focals) }

// Mass returns the value stored for e, or 0 if e is not a focal.
// Complexity: O(k).
func (m *MassFunction[E]) Mass(e E) float64 {
	if idx := m.indexOf(e); idx >= 0 {
		return m.focals[idx].Value
	}
	return 0
}

// HasValidSum reports whether the focal values sum to 1 within Epsilon.
// Complexity: O(k).
func (m *MassFunction[E]) HasValidSum() bool {
	sum := 0.0
	for _, f := range m.focals {
		sum += f.Value
	}
	return sum >= 1-Epsilon && sum <= 1+Epsilon
}

// HasValidValues reports whether every focal value lies in [0,1].
// Complexity: O(k).
func (m *MassFunction[E]) HasValidValues() bool {
	for _, f := range m.focals {
		if f.Value < 0 || f.Value > 1 {
			return false
		}
	}
	return true
}

// IsValid reports HasValidSum() && HasValidValues() — the validity
// predicate used throughout the spec to describe a MassFunction's
// lifecycle state.
// Complexity: O(k).
func (m *MassFunction[E]) IsValid() bool {
	return m.HasValidSum() && m.HasValidValues()
}
