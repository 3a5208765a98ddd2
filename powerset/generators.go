package powerset

import (
	"fmt"

	"github.com/katalvlaran/dsbelief/element"
)

// Atoms returns the n singleton DiscreteElements of an n-atom frame.
// Returns ErrOutOfRange if n < 2.
// Complexity: O(n).
func Atoms(n int) (*Set[*element.DiscreteElement], error) {
	if n < 2 {
		return nil, fmt.Errorf("powerset.Atoms(%d): %w", n, ErrOutOfRange)
	}
	out := &Set[*element.DiscreteElement]{}
	for i := 0; i < n; i++ {
		singleton, err := singletonAtIndex(n, i)
		if err != nil {
			return nil, err
		}
		if err := out.Add(singleton); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func singletonAtIndex(n, i int) (*element.DiscreteElement, error) {
	words := make([]uint64, wordCountFor(n))
	words[i/64] = uint64(1) << uint(i%64)
	return element.FromBits(n, words...)
}

func wordCountFor(n int) int { return (n + 63) / 64 }

// PowerSet returns every subset of an n-atom frame (2^n elements), built by
// draining an element.Enumerator. This is the one generator the spec
// accepts exponential cost from.
// Returns ErrOutOfRange if n < 2.
// Complexity: O(2^n * n/64) time, O(2^n) space.
func PowerSet(n int) (*Set[*element.DiscreteElement], error) {
	if n < 2 {
		return nil, fmt.Errorf("powerset.PowerSet(%d): %w", n, ErrOutOfRange)
	}
	en, err := element.NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	out := &Set[*element.DiscreteElement]{}
	for {
		e, ok := en.Next()
		if !ok {
			break
		}
		if err := out.Add(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PartialPowerSet returns every subset of an n-atom frame with cardinality
// at most maxCard.
// Returns ErrOutOfRange if n < 2 or maxCard <= 0.
// Complexity: O(2^n) time (filtered at generation).
func PartialPowerSet(n, maxCard int) (*Set[*element.DiscreteElement], error) {
	if maxCard <= 0 {
		return nil, fmt.Errorf("powerset.PartialPowerSet(maxCard=%d): %w", maxCard, ErrOutOfRange)
	}
	if n < 2 {
		return nil, fmt.Errorf("powerset.PartialPowerSet(%d): %w", n, ErrOutOfRange)
	}
	en, err := element.NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	out := &Set[*element.DiscreteElement]{}
	for {
		e, ok := en.Next()
		if !ok {
			break
		}
		if e.Card() > float64(maxCard) {
			continue
		}
		if err := out.Add(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SubsetsOf returns every subset of e, generated directly over e's atom
// indices rather than over the whole frame — O(2^|e|) instead of O(2^n).
// Complexity: O(2^|e|).
func SubsetsOf(e *element.DiscreteElement) (*Set[*element.DiscreteElement], error) {
	atoms := e.AtomIndices()
	k := len(atoms)
	n := e.Size()
	out := &Set[*element.DiscreteElement]{}
	total := uint64(1) << uint(k)
	for mask := uint64(0); mask < total; mask++ {
		words := make([]uint64, wordCountFor(n))
		for bit := 0; bit < k; bit++ {
			if mask&(uint64(1)<<uint(bit)) != 0 {
				idx := atoms[bit]
				words[idx/64] |= uint64(1) << uint(idx%64)
			}
		}
		sub, err := element.FromBits(n, words...)
		if err != nil {
			return nil, err
		}
		if err := out.Add(sub); err != nil {
			return nil, err
		}
	}
	return out, nil
}
