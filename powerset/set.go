package powerset

import "github.com/katalvlaran/dsbelief/element"

// Set is an insertion-ordered, duplicate-free collection of mutually
// compatible elements. Compatibility is pinned by the first element added,
// mirroring the "first insert pins the mode" pattern used for frame
// compatibility across this module (MassFunction pins its frame the same
// way).
type Set[E element.Interface[E]] struct {
	elems []E
}

// New builds a Set from zero or more elements, in order.
// Returns ErrIncompatibleFrame if the elements are not pairwise compatible.
// Complexity: O(k^2) for k elements (duplicate/compat checks).
func New[E element.Interface[E]](elems ...E) (*Set[E], error) {
	s := &Set[E]{}
	for _, e := range elems {
		if err := s.Add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends e, silently ignoring an exact (element-equal) duplicate.
// Returns ErrIncompatibleFrame if s is non-empty and e is incompatible with
// the first-inserted element.
// Complexity: O(k) for k current elements.
func (s *Set[E]) Add(e E) error {
	if len(s.elems) > 0 && !s.elems[0].IsCompatible(e) {
		return ErrIncompatibleFrame
	}
	if s.Contains(e) {
		return nil
	}
	s.elems = append(s.elems, e)
	return nil
}

// Contains reports whether e is already a member (by element-equality).
// Complexity: O(k).
func (s *Set[E]) Contains(e E) bool {
	for _, existing := range s.elems {
		if existing.Equal(e) {
			return true
		}
	}
	return false
}

// Card returns the number of elements.
// Complexity: O(1).
func (s *Set[E]) Card() int { return len(s.elems) }

// Elements returns a defensive copy of the members, in insertion order.
// Complexity: O(k).
func (s *Set[E]) Elements() []E {
	out := make([]E, len(s.elems))
	copy(out, s.elems)
	return out
}

// Union returns a new Set containing every element of s and other.
// Returns ErrIncompatibleFrame if the two Sets are not compatible.
// Complexity: O((k+m)^2).
func (s *Set[E]) Union(other *Set[E]) (*Set[E], error) {
	out, err := New[E](s.elems...)
	if err != nil {
		return nil, err
	}
	for _, e := range other.elems {
		if err := out.Add(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Intersection returns a new Set containing the elements present in both s
// and other.
// Complexity: O(k*m).
func (s *Set[E]) Intersection(other *Set[E]) (*Set[E], error) {
	out := &Set[E]{}
	for _, e := range s.elems {
		if other.Contains(e) {
			if err := out.Add(e); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// IsSubsetOf reports whether every element of s is a member of other.
// Complexity: O(k*m).
func (s *Set[E]) IsSubsetOf(other *Set[E]) bool {
	for _, e := range s.elems {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}
