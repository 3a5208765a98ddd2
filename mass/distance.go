package mass

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsbelief/element"
)

// difference computes the element-wise m - other, via RemoveMass semantics
// (may produce negative values; the result is not a proper mass function).
// Returns ErrEmptyFunction if either input has no focals.
func difference[E element.Interface[E]](m, other *MassFunction[E]) (*MassFunction[E], error) {
	if len(m.focals) == 0 || len(other.focals) == 0 {
		return nil, fmt.Errorf("mass: difference: %w", ErrEmptyFunction)
	}
	out := Empty[E]()
	for _, f := range m.focals {
		if err := out.AddMass(f.Element, f.Value); err != nil {
			return nil, err
		}
	}
	for _, f := range other.focals {
		if err := out.RemoveMass(f.Element, f.Value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Distance returns the Jousselme distance between m and other: with F the
// union focal set of m-other and v the vector of (m-other) values over F,
// D[i][j] = |fi inter fj| / |fi union fj| (1 when both are empty), the
// distance is sqrt(0.5 * v^T D v).
// Returns ErrEmptyFunction if either input has no focals.
// Complexity: O(|F|^2).
func Distance[E element.Interface[E]](m, other *MassFunction[E]) (float64, error) {
	diff, err := difference(m, other)
	if err != nil {
		return 0, err
	}
	focals := diff.focals
	n := len(focals)
	if n == 0 {
		return 0, nil
	}
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fi, fj := focals[i].Element, focals[j].Element
			if fi.IsEmpty() && fj.IsEmpty() {
				d[i][j] = 1
				continue
			}
			inter, err := fi.Conjunction(fj)
			if err != nil {
				return 0, err
			}
			union, err := fi.Disjunction(fj)
			if err != nil {
				return 0, err
			}
			uc := union.Card()
			if uc == 0 {
				d[i][j] = 0
				continue
			}
			d[i][j] = inter.Card() / uc
		}
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum += focals[i].Value * d[i][j] * focals[j].Value
		}
	}
	if sum < 0 {
		sum = 0 // guard against floating-point noise producing a tiny negative
	}
	return math.Sqrt(0.5 * sum), nil
}

// DistanceN returns the mean of the pairwise Jousselme distances across an
// n-ary cohort.
// Returns ErrNotEnoughInputs if fewer than two mass functions are given.
// Complexity: O(n^2 * |F|^2).
func DistanceN[E element.Interface[E]](ms ...*MassFunction[E]) (float64, error) {
	if len(ms) < 2 {
		return 0, fmt.Errorf("mass.DistanceN: %w", ErrNotEnoughInputs)
	}
	total := 0.0
	count := 0
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms); j++ {
			d, err := Distance(ms[i], ms[j])
			if err != nil {
				return 0, err
			}
			total += d
			count++
		}
	}
	return total / float64(count), nil
}

// Similarity returns 0.5*(cos(pi*distance)+1), mapping the Jousselme
// distance (in [0,1]) onto a similarity also in [0,1].
// Complexity: same as Distance.
func Similarity[E element.Interface[E]](m, other *MassFunction[E]) (float64, error) {
	d, err := Distance(m, other)
	if err != nil {
		return 0, err
	}
	return 0.5 * (math.Cos(math.Pi*d) + 1), nil
}

// SupportMatrix returns the full n x n pairwise Similarity matrix for a
// cohort, including each mass function's similarity with itself (1 on the
// diagonal). CombinationChen computes the same pairwise similarities in its
// own loop to build its credibilities.
// Complexity: O(n^2 * |F|^2).
func SupportMatrix[E element.Interface[E]](ms ...*MassFunction[E]) ([][]float64, error) {
	n := len(ms)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			s, err := Similarity(ms[i], ms[j])
			if err != nil {
				return nil, err
			}
			out[i][j] = s
		}
	}
	return out, nil
}

// Support returns the support of m over a cohort: the sum of
// Similarity(m, mj) across the cohort, including similarity with m itself
// when m appears in the cohort (support is not automatically
// self-excluding).
// Returns ErrNotEnoughInputs if the cohort is empty.
// Complexity: O(len(cohort) * |F|^2).
func Support[E element.Interface[E]](m *MassFunction[E], cohort ...*MassFunction[E]) (float64, error) {
	if len(cohort) == 0 {
		return 0, fmt.Errorf("mass.Support: %w", ErrNotEnoughInputs)
	}
	sum := 0.0
	for _, other := range cohort {
		s, err := Similarity(m, other)
		if err != nil {
			return 0, err
		}
		sum += s
	}
	return sum, nil
}
