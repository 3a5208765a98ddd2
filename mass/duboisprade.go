package mass

import (
	"fmt"

	"github.com/katalvlaran/dsbelief/element"
)

// walkTreeOfFocals visits every tuple in the Cartesian product of
// focals(m1) x ... x focals(mk) exactly once, via recursive backtracking
// over a single reused tuple buffer. This realises the spec's "tree of
// focals" incrementally (distribute-into-copies) without ever materialising
// the full prod(k_i)-entry list: at any moment only the current path down
// the recursion is live.
// Complexity: O(prod(k_i)) calls to visit, recursion depth equal to the
// number of inputs.
func walkTreeOfFocals[E element.Interface[E]](ms []*MassFunction[E], visit func(tuple []FocalElement[E]) error) error {
	tuple := make([]FocalElement[E], len(ms))
	var rec func(i int) error
	rec = func(i int) error {
		if i == len(ms) {
			return visit(tuple)
		}
		for _, f := range ms[i].focals {
			tuple[i] = f
			if err := rec(i + 1); err != nil {
				return err
			}
		}
		return nil
	}
	return rec(0)
}

// CombinationDuboisPrade assigns, for every tuple (f1,...,fk) across the
// full Cartesian product of the inputs' focals, the mass prod(m(fi)) to the
// tuple's intersection when it is non-empty, or to its union otherwise.
// Requires len(ms) >= 2, each non-empty and pairwise compatible.
// Complexity: O(prod(k_i) * n) for the per-tuple intersection/union scan.
func CombinationDuboisPrade[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	if len(ms) < 2 {
		return nil, fmt.Errorf("mass.CombinationDuboisPrade: %w", ErrNotEnoughInputs)
	}
	for i, m := range ms {
		if len(m.focals) == 0 {
			return nil, fmt.Errorf("mass.CombinationDuboisPrade: %w", ErrEmptyFunction)
		}
		if i > 0 && !ms[0].focals[0].Element.IsCompatible(m.focals[0].Element) {
			return nil, fmt.Errorf("mass.CombinationDuboisPrade: %w", ErrIncompatibleFrame)
		}
	}
	out := Empty[E]()
	err := walkTreeOfFocals(ms, func(tuple []FocalElement[E]) error {
		val := 1.0
		inter := tuple[0].Element
		union := tuple[0].Element
		for _, f := range tuple {
			val *= f.Value
		}
		var err error
		for _, f := range tuple[1:] {
			inter, err = inter.Conjunction(f.Element)
			if err != nil {
				return err
			}
			union, err = union.Disjunction(f.Element)
			if err != nil {
				return err
			}
		}
		if !inter.IsEmpty() {
			return out.AddMass(inter, val)
		}
		return out.AddMass(union, val)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
