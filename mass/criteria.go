package mass

import "math"

// Bel returns the belief of e: the sum of m(f) over non-empty focals f that
// are subsets of e. Bel(empty) = 0 by construction (the empty focal, if
// present, is always skipped).
// Complexity: O(k).
func (m *MassFunction[E]) Bel(e E) float64 {
	sum := 0.0
	for _, f := range m.focals {
		if f.Element.IsEmpty() {
			continue
		}
		if sub, err := f.Element.IsSubsetOf(e); err == nil && sub {
			sum += f.Value
		}
	}
	return sum
}

// Pl returns the plausibility of e: the sum of m(f) over focals f that
// intersect e. Pl(empty) = 1 by the spec's seed-value convention.
// Complexity: O(k).
func (m *MassFunction[E]) Pl(e E) float64 {
	if e.IsEmpty() {
		return 1
	}
	sum := 0.0
	for _, f := range m.focals {
		inter, err := f.Element.Conjunction(e)
		if err != nil {
			continue
		}
		if !inter.IsEmpty() {
			sum += f.Value
		}
	}
	return sum
}

// Q returns the commonality of e: the sum of m(f) over focals f that are
// supersets of e. Q(empty) = 1 by the spec's seed-value convention.
// Complexity: O(k).
func (m *MassFunction[E]) Q(e E) float64 {
	if e.IsEmpty() {
		return 1
	}
	sum := 0.0
	for _, f := range m.focals {
		if sub, err := e.IsSubsetOf(f.Element); err == nil && sub {
			sum += f.Value
		}
	}
	return sum
}

// BetP returns the pignistic probability of e: the sum over non-empty
// focals f of m(f) * |e inter f| / |f|. BetP(empty) = 0.
// Complexity: O(k).
func (m *MassFunction[E]) BetP(e E) float64 {
	if e.IsEmpty() {
		return 0
	}
	sum := 0.0
	for _, f := range m.focals {
		if f.Element.IsEmpty() {
			continue
		}
		card := f.Element.Card()
		if card == 0 {
			continue
		}
		inter, err := f.Element.Conjunction(e)
		if err != nil {
			continue
		}
		sum += f.Value * inter.Card() / card
	}
	return sum
}

// Specificity returns sum(m(f)/|f|) over focals with |f| > 0.
// Complexity: O(k).
func (m *MassFunction[E]) Specificity() float64 {
	sum := 0.0
	for _, f := range m.focals {
		card := f.Element.Card()
		if card <= 0 {
			continue
		}
		sum += f.Value / card
	}
	return sum
}

// NonSpecificity returns sum(m(f) * log2(|f|)) over focals with |f| > 0.
// Complexity: O(k).
func (m *MassFunction[E]) NonSpecificity() float64 {
	sum := 0.0
	for _, f := range m.focals {
		card := f.Element.Card()
		if card <= 0 {
			continue
		}
		sum += f.Value * math.Log2(card)
	}
	return sum
}

// Discrepancy returns -sum(m(f) * log2(BetP(f))) over focals with
// BetP(f) > 0 (terms with BetP(f) <= 0 contribute 0, since log2 of a
// non-positive value is undefined).
// Complexity: O(k^2) (BetP is evaluated once per focal).
func (m *MassFunction[E]) Discrepancy() float64 {
	sum := 0.0
	for _, f := range m.focals {
		betp := m.BetP(f.Element)
		if betp <= 0 {
			continue
		}
		sum -= f.Value * math.Log2(betp)
	}
	return sum
}
