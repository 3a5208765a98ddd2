package mass

import "fmt"

// Weakening returns a new MassFunction with every value scaled by (1-alpha)
// and mass alpha added to the empty element.
// Returns ErrOutOfRange if alpha is outside [0,1], ErrEmptyFunction if m has
// no focals (there is no element to derive the frame's empty element from).
// Complexity: O(k).
func (m *MassFunction[E]) Weakening(alpha float64) (*MassFunction[E], error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("mass.Weakening(%v): %w", alpha, ErrOutOfRange)
	}
	if len(m.focals) == 0 {
		return nil, fmt.Errorf("mass.Weakening: %w", ErrEmptyFunction)
	}
	out := Empty[E]()
	for _, f := range m.focals {
		if err := out.AddMass(f.Element.Clone(), f.Value*(1-alpha)); err != nil {
			return nil, err
		}
	}
	if err := out.AddMass(m.focals[0].Element.GetEmpty(), alpha); err != nil {
		return nil, err
	}
	return out, nil
}

// Discounting returns a new MassFunction with every value scaled by
// (1-alpha) and mass alpha added to the complete element, modelling a
// source whose reliability is 1-alpha.
// Returns ErrOutOfRange if alpha is outside [0,1], ErrEmptyFunction if m has
// no focals.
// Complexity: O(k).
func (m *MassFunction[E]) Discounting(alpha float64) (*MassFunction[E], error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("mass.Discounting(%v): %w", alpha, ErrOutOfRange)
	}
	if len(m.focals) == 0 {
		return nil, fmt.Errorf("mass.Discounting: %w", ErrEmptyFunction)
	}
	out := Empty[E]()
	for _, f := range m.focals {
		if err := out.AddMass(f.Element.Clone(), f.Value*(1-alpha)); err != nil {
			return nil, err
		}
	}
	if err := out.AddMass(m.focals[0].Element.GetComplete(), alpha); err != nil {
		return nil, err
	}
	return out, nil
}

// Conditioning returns m conditioned on e, defined as the Smets-conjunctive
// combination of m with the categorical mass function {(e,1)}.
// Returns ErrEmptyFunction if m has no focals, ErrEmptyElement if e is
// empty, ErrIncompatibleFrame if e is incompatible with m's frame.
// Complexity: O(k).
func (m *MassFunction[E]) Conditioning(e E) (*MassFunction[E], error) {
	if len(m.focals) == 0 {
		return nil, fmt.Errorf("mass.Conditioning: %w", ErrEmptyFunction)
	}
	if e.IsEmpty() {
		return nil, fmt.Errorf("mass.Conditioning: %w", ErrEmptyElement)
	}
	if !m.focals[0].Element.IsCompatible(e) {
		return nil, fmt.Errorf("mass.Conditioning: %w", ErrIncompatibleFrame)
	}
	categorical, err := FromFocals[E](FocalElement[E]{Element: e, Value: 1})
	if err != nil {
		return nil, err
	}
	return CombinationSmets(m, categorical)
}
