package element

import "fmt"

// Enumerator is a lazy successor-generator over all 2^n DiscreteElements of
// an n-atom frame, starting at the empty element and terminating after the
// complete element. It never materialises more than the current word
// vector — callers that need a materialised collection use
// powerset.PowerSet.
type Enumerator struct {
	n    int
	cur  []uint64
	done bool
}

// NewEnumerator builds an Enumerator over an n-atom frame.
// Returns ErrOutOfRange if n < 2.
// Complexity: O(1).
func NewEnumerator(n int) (*Enumerator, error) {
	if n < 2 {
		return nil, fmt.Errorf("element.NewEnumerator(%d): %w", n, ErrOutOfRange)
	}
	return &Enumerator{n: n, cur: make([]uint64, wordCount(n))}, nil
}

// Reset rewinds the Enumerator back to the empty element.
// Complexity: O(ceil(n/64)).
func (en *Enumerator) Reset() {
	for i := range en.cur {
		en.cur[i] = 0
	}
	en.done = false
}

func isFull(words []uint64, n int) bool {
	for i, w := range words {
		want := uint64(^uint64(0))
		if i == len(words)-1 {
			want = topMask(n)
		}
		if w != want {
			return false
		}
	}
	return true
}

func incrementWithCarry(words []uint64) {
	for i := range words {
		words[i]++
		if words[i] != 0 {
			return
		}
	}
}

// Next returns the next DiscreteElement in bit-vector successor order and
// true, or (nil, false) once the complete element has already been
// returned.
// Complexity: O(ceil(n/64)) amortised.
func (en *Enumerator) Next() (*DiscreteElement, bool) {
	if en.done {
		return nil, false
	}
	snapshot := make([]uint64, len(en.cur))
	copy(snapshot, en.cur)
	result := &DiscreteElement{size: en.n, bits: snapshot}

	if isFull(en.cur, en.n) {
		en.done = true
	} else {
		incrementWithCarry(en.cur)
		maskTop(en.cur, en.n)
	}
	return result, true
}
