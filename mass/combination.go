package mass

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsbelief/element"
)

// Rule names a combination rule for the Combine dispatcher.
type Rule string

// Supported combination rule tags.
const (
	RuleSmets       Rule = "smets"
	RuleDempster    Rule = "dempster"
	RuleDisjunctive Rule = "disjunctive"
	RuleYager       Rule = "yager"
	RuleDuboisPrade Rule = "dubois-prade"
	RuleAverage     Rule = "average"
	RuleMurphy      Rule = "murphy"
	RuleChen        Rule = "chen"
)

// pairwiseFold folds op across ms left to right: combine(m1,m2,...,mk) =
// combine(combine(m1,m2), m3, ..., mk). op computes the single pairwise
// combination; used by Smets and Disjunctive, which differ only in which
// element-algebra operation (Conjunction vs Disjunction) builds the output
// element from each (f1,f2) pair.
func pairwiseFold[E element.Interface[E]](ms []*MassFunction[E], op func(x, y E) (E, error)) (*MassFunction[E], error) {
	if len(ms) < 2 {
		return nil, fmt.Errorf("mass: pairwise combination: %w", ErrNotEnoughInputs)
	}
	acc := ms[0]
	for _, next := range ms[1:] {
		var err error
		acc, err = pairwiseCombine2(acc, next, op)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func pairwiseCombine2[E element.Interface[E]](a, b *MassFunction[E], op func(x, y E) (E, error)) (*MassFunction[E], error) {
	if len(a.focals) == 0 || len(b.focals) == 0 {
		return nil, fmt.Errorf("mass: combination: %w", ErrEmptyFunction)
	}
	if !a.focals[0].Element.IsCompatible(b.focals[0].Element) {
		return nil, fmt.Errorf("mass: combination: %w", ErrIncompatibleFrame)
	}
	out := Empty[E]()
	for _, fa := range a.focals {
		for _, fb := range b.focals {
			elem, err := op(fa.Element, fb.Element)
			if err != nil {
				return nil, err
			}
			if err := out.AddMass(elem, fa.Value*fb.Value); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// CombinationSmets is the unnormalised conjunctive combination: for every
// pair (f1,f2) across two inputs, m(f1)*m(f2) is added to f1 inter f2.
// N-ary inputs fold left. Requires len(ms) >= 2, each non-empty and
// pairwise compatible.
// Complexity: O(prod(k_i)) for k_i focals per input.
func CombinationSmets[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	return pairwiseFold(ms, func(x, y E) (E, error) { return x.Conjunction(y) })
}

// CombinationDisjunctive combines with union in place of intersection.
// Requires len(ms) >= 2.
// Complexity: O(prod(k_i)).
func CombinationDisjunctive[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	return pairwiseFold(ms, func(x, y E) (E, error) { return x.Disjunction(y) })
}

// CombinationDempster is CombinationSmets followed by removing the empty
// focal and normalising.
// Returns ErrTotalConflict if the post-Smets empty mass equals 1 (within
// Epsilon).
// Complexity: O(prod(k_i)).
func CombinationDempster[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	smets, err := CombinationSmets(ms...)
	if err != nil {
		return nil, err
	}
	conflict := 0.0
	for _, f := range smets.focals {
		if f.Element.IsEmpty() {
			conflict = f.Value
		}
	}
	if math.Abs(conflict-1) < Epsilon {
		return nil, fmt.Errorf("mass.CombinationDempster: %w", ErrTotalConflict)
	}
	out := Empty[E]()
	for _, f := range smets.focals {
		if f.Element.IsEmpty() {
			continue
		}
		if err := out.AddMass(f.Element, f.Value); err != nil {
			return nil, err
		}
	}
	if err := out.Normalise(); err != nil {
		return nil, err
	}
	return out, nil
}

// CombinationYager is CombinationSmets with any mass assigned to the empty
// element moved onto the complete element instead of normalised away.
// Complexity: O(prod(k_i)).
func CombinationYager[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	smets, err := CombinationSmets(ms...)
	if err != nil {
		return nil, err
	}
	out := Empty[E]()
	conflict := 0.0
	for _, f := range smets.focals {
		if f.Element.IsEmpty() {
			conflict = f.Value
			continue
		}
		if err := out.AddMass(f.Element, f.Value); err != nil {
			return nil, err
		}
	}
	if conflict != 0 {
		if err := out.AddMass(smets.focals[0].Element.GetComplete(), conflict); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CombinationAverage returns the arithmetic mean of the focal values across
// all inputs (a focal absent from one input counts as value 0 there).
// Requires len(ms) >= 2, each non-empty and pairwise compatible.
// Complexity: O(sum(k_i)).
func CombinationAverage[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	if len(ms) < 2 {
		return nil, fmt.Errorf("mass.CombinationAverage: %w", ErrNotEnoughInputs)
	}
	for _, m := range ms {
		if len(m.focals) == 0 {
			return nil, fmt.Errorf("mass.CombinationAverage: %w", ErrEmptyFunction)
		}
		if !ms[0].focals[0].Element.IsCompatible(m.focals[0].Element) {
			return nil, fmt.Errorf("mass.CombinationAverage: %w", ErrIncompatibleFrame)
		}
	}
	out := Empty[E]()
	n := float64(len(ms))
	for _, m := range ms {
		for _, f := range m.focals {
			if err := out.AddMass(f.Element, f.Value/n); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// CombinationMurphy computes the average of all inputs (CombinationAverage),
// then combines it with itself by Dempster n-1 times, where n is the number
// of inputs.
// Requires len(ms) >= 2.
// Complexity: O(sum(k_i) + n * k_avg^2) where k_avg is the averaged focal
// count.
func CombinationMurphy[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	if len(ms) < 2 {
		return nil, fmt.Errorf("mass.CombinationMurphy: %w", ErrNotEnoughInputs)
	}
	avg, err := CombinationAverage(ms...)
	if err != nil {
		return nil, err
	}
	result := avg
	for i := 0; i < len(ms)-1; i++ {
		result, err = CombinationDempster(result, avg)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// CombinationChen builds credibilities from pairwise distance-based support
// (support_i = sum_j similarity(m_i,m_j) - 1), forms a single mass function
// as sum(c_i * m_i), then combines it with itself by Dempster n-1 times.
// Requires len(ms) >= 2.
// Complexity: O(n^2 * k^2) for the support matrix plus the Dempster tail.
func CombinationChen[E element.Interface[E]](ms ...*MassFunction[E]) (*MassFunction[E], error) {
	if len(ms) < 2 {
		return nil, fmt.Errorf("mass.CombinationChen: %w", ErrNotEnoughInputs)
	}
	n := len(ms)
	support := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			s, err := Similarity(ms[i], ms[j])
			if err != nil {
				return nil, err
			}
			sum += s
		}
		support[i] = sum - 1
	}
	total := 0.0
	for _, s := range support {
		total += s
	}
	if total == 0 {
		return nil, fmt.Errorf("mass.CombinationChen: %w", ErrEmptyFunction)
	}
	combined := Empty[E]()
	for i, m := range ms {
		cred := support[i] / total
		for _, f := range m.focals {
			if err := combined.AddMass(f.Element, cred*f.Value); err != nil {
				return nil, err
			}
		}
	}
	result := combined
	var err error
	for i := 0; i < n-1; i++ {
		result, err = CombinationDempster(result, combined)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Combine dispatches to the named combination rule.
// Returns ErrUnsupportedRule for an unrecognised tag.
func Combine[E element.Interface[E]](rule Rule, ms ...*MassFunction[E]) (*MassFunction[E], error) {
	switch rule {
	case RuleSmets:
		return CombinationSmets(ms...)
	case RuleDempster:
		return CombinationDempster(ms...)
	case RuleDisjunctive:
		return CombinationDisjunctive(ms...)
	case RuleYager:
		return CombinationYager(ms...)
	case RuleDuboisPrade:
		return CombinationDuboisPrade(ms...)
	case RuleAverage:
		return CombinationAverage(ms...)
	case RuleMurphy:
		return CombinationMurphy(ms...)
	case RuleChen:
		return CombinationChen(ms...)
	default:
		return nil, fmt.Errorf("mass.Combine(%q): %w", rule, ErrUnsupportedRule)
	}
}

// AutoConflict performs degree successive Smets self-combinations of m with
// itself and returns the mass accumulated at the empty element.
// Returns ErrOutOfRange if degree < 1, ErrEmptyFunction if m has no focals.
// Complexity: O(degree * k^2).
func AutoConflict[E element.Interface[E]](m *MassFunction[E], degree int) (float64, error) {
	if degree < 1 {
		return 0, fmt.Errorf("mass.AutoConflict(%d): %w", degree, ErrOutOfRange)
	}
	if len(m.focals) == 0 {
		return 0, fmt.Errorf("mass.AutoConflict: %w", ErrEmptyFunction)
	}
	acc := m
	var err error
	for i := 0; i < degree; i++ {
		acc, err = CombinationSmets(acc, m)
		if err != nil {
			return 0, err
		}
	}
	return acc.Mass(m.focals[0].Element.GetEmpty()), nil
}
