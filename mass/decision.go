package mass

import (
	"fmt"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/katalvlaran/dsbelief/powerset"
)

// Criterion evaluates a decision-support measure (Bel, BetP, Pl, Q, or any
// user-supplied function) for m at e. Threading it as a function value
// keeps GetMax/GetMin generic over whichever criterion the caller wants to
// rank by, rather than forcing a type switch.
type Criterion[E element.Interface[E]] func(m *MassFunction[E], e E) float64

// GetMax returns every focal in set whose f-value is the strict maximum
// among elements satisfying 0 < |e| <= maxCard and f(e) != 0; ties are all
// included. An element with f(e) == 0 never seeds the running maximum and
// never appears in the result, even though it is still subject to the
// cardinality filter first (matching the source literally, per spec
// Sec.4.6.7/Sec.9).
// Returns ErrOutOfRange if maxCard <= 0.
// Complexity: O(set.Card()) criterion evaluations.
func GetMax[E element.Interface[E]](m *MassFunction[E], f Criterion[E], maxCard int, set *powerset.Set[E]) ([]FocalElement[E], error) {
	if maxCard <= 0 {
		return nil, fmt.Errorf("mass.GetMax(maxCard=%d): %w", maxCard, ErrOutOfRange)
	}
	var best float64
	var result []FocalElement[E]
	seeded := false
	for _, e := range set.Elements() {
		card := e.Card()
		if card <= 0 || card > float64(maxCard) {
			continue
		}
		val := f(m, e)
		if val == 0 {
			continue
		}
		switch {
		case !seeded || val > best:
			best = val
			result = []FocalElement[E]{{Element: e, Value: val}}
			seeded = true
		case val == best:
			result = append(result, FocalElement[E]{Element: e, Value: val})
		}
	}
	return result, nil
}

// GetMin is the symmetric strict-minimum counterpart of GetMax.
// Returns ErrOutOfRange if maxCard <= 0.
// Complexity: O(set.Card()) criterion evaluations.
func GetMin[E element.Interface[E]](m *MassFunction[E], f Criterion[E], maxCard int, set *powerset.Set[E]) ([]FocalElement[E], error) {
	if maxCard <= 0 {
		return nil, fmt.Errorf("mass.GetMin(maxCard=%d): %w", maxCard, ErrOutOfRange)
	}
	var best float64
	var result []FocalElement[E]
	seeded := false
	for _, e := range set.Elements() {
		card := e.Card()
		if card <= 0 || card > float64(maxCard) {
			continue
		}
		val := f(m, e)
		if val == 0 {
			continue
		}
		switch {
		case !seeded || val < best:
			best = val
			result = []FocalElement[E]{{Element: e, Value: val}}
			seeded = true
		case val == best:
			result = append(result, FocalElement[E]{Element: e, Value: val})
		}
	}
	return result, nil
}

// GetMaxOverFrame is the Discrete convenience overload of GetMax that
// defaults the candidate set to the full power set of m's own frame.
//
// WARNING: this materialises powerset.PowerSet(n), which is O(2^n) — only
// safe for small frames. Prefer GetMax with an explicit, bounded set (e.g.
// powerset.PartialPowerSet) for larger n.
func GetMaxOverFrame(m *MassFunction[*element.DiscreteElement], f Criterion[*element.DiscreteElement], maxCard int) ([]FocalElement[*element.DiscreteElement], error) {
	if m.Len() == 0 {
		return nil, fmt.Errorf("mass.GetMaxOverFrame: %w", ErrEmptyFunction)
	}
	set, err := powerset.PowerSet(m.focals[0].Element.Size())
	if err != nil {
		return nil, err
	}
	return GetMax(m, f, maxCard, set)
}

// GetMinOverFrame is the Discrete convenience overload of GetMin that
// defaults the candidate set to the full power set of m's own frame.
//
// WARNING: this materialises powerset.PowerSet(n), which is O(2^n) — only
// safe for small frames. Prefer GetMin with an explicit, bounded set (e.g.
// powerset.PartialPowerSet) for larger n.
func GetMinOverFrame(m *MassFunction[*element.DiscreteElement], f Criterion[*element.DiscreteElement], maxCard int) ([]FocalElement[*element.DiscreteElement], error) {
	if m.Len() == 0 {
		return nil, fmt.Errorf("mass.GetMinOverFrame: %w", ErrEmptyFunction)
	}
	set, err := powerset.PowerSet(m.focals[0].Element.Size())
	if err != nil {
		return nil, err
	}
	return GetMin(m, f, maxCard, set)
}
