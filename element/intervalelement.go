package element

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/dsbelief/interval"
)

// IntervalElement is a finite union of pairwise non-overlapping, sorted
// interval.Interval values. It is always kept normalised: sorted by start,
// touching/overlapping intervals merged, empty intervals dropped.
//
// Unlike DiscreteElement, IntervalElements are mutually compatible
// regardless of "size" — there is no frame-size analogue over the reals.
type IntervalElement struct {
	intervals []interval.Interval
}

// EmptyInterval builds the empty IntervalElement.
// Complexity: O(1).
func EmptyInterval() *IntervalElement { return &IntervalElement{} }

// CompleteInterval builds the complete IntervalElement, (-Inf, +Inf).
// Complexity: O(1).
func CompleteInterval() *IntervalElement {
	return &IntervalElement{intervals: []interval.Interval{interval.Complete()}}
}

// FromIntervals builds a normalised IntervalElement from arbitrary
// (possibly overlapping, unsorted) intervals.
// Complexity: O(k log k) for k input intervals.
func FromIntervals(ivs ...interval.Interval) *IntervalElement {
	e := &IntervalElement{intervals: append([]interval.Interval(nil), ivs...)}
	e.normalise()
	return e
}

// normalise sorts by start (then end), merges touching/overlapping
// intervals, and drops empties. Invoked after every build or mutation.
// Complexity: O(k log k).
func (e *IntervalElement) normalise() {
	filtered := e.intervals[:0:0]
	for _, iv := range e.intervals {
		if !iv.IsEmpty() {
			filtered = append(filtered, iv)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start != filtered[j].Start {
			return filtered[i].Start < filtered[j].Start
		}
		return filtered[i].End < filtered[j].End
	})
	merged := make([]interval.Interval, 0, len(filtered))
	for _, iv := range filtered {
		if n := len(merged); n > 0 && merged[n-1].Adjoins(iv) {
			merged[n-1] = merged[n-1].Encompass(iv)
		} else {
			merged = append(merged, iv)
		}
	}
	e.intervals = merged
}

// Intervals returns a defensive copy of the normalised interval list.
// Complexity: O(k).
func (e *IntervalElement) Intervals() []interval.Interval {
	out := make([]interval.Interval, len(e.intervals))
	copy(out, e.intervals)
	return out
}

// Opposite sweeps the normalised list, producing the gaps between
// consecutive intervals plus the two unbounded tails, skipping a tail when
// the corresponding endpoint already extends to infinity.
// Complexity: O(k).
func (e *IntervalElement) Opposite() *IntervalElement {
	if e.IsEmpty() {
		return CompleteInterval()
	}
	if e.IsComplete() {
		return EmptyInterval()
	}
	var gaps []interval.Interval
	first := e.intervals[0]
	if !math.IsInf(first.Start, -1) {
		gaps = append(gaps, interval.Interval{Start: math.Inf(-1), End: first.Start})
	}
	for i := 1; i < len(e.intervals); i++ {
		prevEnd := e.intervals[i-1].End
		curStart := e.intervals[i].Start
		gaps = append(gaps, interval.Interval{Start: prevEnd, End: curStart})
	}
	last := e.intervals[len(e.intervals)-1]
	if !math.IsInf(last.End, 1) {
		gaps = append(gaps, interval.Interval{Start: last.End, End: math.Inf(1)})
	}
	return FromIntervals(gaps...)
}

// Conjunction returns the intersection of e and other: the pair-product of
// every (i,j) interval combination, keeping non-empty intersections.
// Complexity: O(len(e.intervals) * len(other.intervals)).
func (e *IntervalElement) Conjunction(other *IntervalElement) (*IntervalElement, error) {
	var out []interval.Interval
	for _, a := range e.intervals {
		for _, b := range other.intervals {
			if inter := a.Intersect(b); !inter.IsEmpty() {
				out = append(out, inter)
			}
		}
	}
	return FromIntervals(out...), nil
}

// Disjunction returns the union of e and other.
// Complexity: O((len(e.intervals)+len(other.intervals)) log(...)).
func (e *IntervalElement) Disjunction(other *IntervalElement) (*IntervalElement, error) {
	all := append(append([]interval.Interval(nil), e.intervals...), other.intervals...)
	return FromIntervals(all...), nil
}

// IsSubsetOf reports whether every interval of e is contained in some
// interval of other.
// Complexity: O(len(e.intervals) * len(other.intervals)).
func (e *IntervalElement) IsSubsetOf(other *IntervalElement) (bool, error) {
	for _, a := range e.intervals {
		contained := false
		for _, b := range other.intervals {
			if b.Start <= a.Start && a.End <= b.End {
				contained = true
				break
			}
		}
		if !contained {
			return false, nil
		}
	}
	return true, nil
}

// IsCompatible always reports true: all IntervalElements share the same
// (real-line) frame.
// Complexity: O(1).
func (e *IntervalElement) IsCompatible(other *IntervalElement) bool { return other != nil }

// Equal reports whether e and other have identical normalised interval
// lists.
// Complexity: O(k).
func (e *IntervalElement) Equal(other *IntervalElement) bool {
	if other == nil || len(e.intervals) != len(other.intervals) {
		return false
	}
	for i := range e.intervals {
		if !e.intervals[i].Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether e's normalised list has no intervals.
// Complexity: O(1).
func (e *IntervalElement) IsEmpty() bool { return len(e.intervals) == 0 }

// IsComplete reports whether e is the single interval (-Inf, +Inf).
// Complexity: O(1).
func (e *IntervalElement) IsComplete() bool {
	return len(e.intervals) == 1 && e.intervals[0].IsComplete()
}

// Card returns the sum of interval sizes; may be +Inf.
// Complexity: O(k).
func (e *IntervalElement) Card() float64 {
	sum := 0.0
	for _, iv := range e.intervals {
		sum += iv.Size()
	}
	return sum
}

// GetEmpty returns the empty IntervalElement.
// Complexity: O(1).
func (e *IntervalElement) GetEmpty() *IntervalElement { return EmptyInterval() }

// GetComplete returns the complete IntervalElement.
// Complexity: O(1).
func (e *IntervalElement) GetComplete() *IntervalElement { return CompleteInterval() }

// Clone returns an independent deep copy of e.
// Complexity: O(k).
func (e *IntervalElement) Clone() *IntervalElement {
	return &IntervalElement{intervals: e.Intervals()}
}

// String renders e as its normalised intervals joined by " U ", e.g.
// "[0,1] U [2,3]", or "{}" when e is empty.
func (e *IntervalElement) String() string {
	s := ""
	for i, iv := range e.intervals {
		if i > 0 {
			s += " U "
		}
		s += "[" + formatBound(iv.Start) + "," + formatBound(iv.End) + "]"
	}
	if s == "" {
		return "{}"
	}
	return s
}

func formatBound(x float64) string {
	switch {
	case math.IsInf(x, -1):
		return "-Inf"
	case math.IsInf(x, 1):
		return "+Inf"
	default:
		return trimFloat(x)
	}
}

func trimFloat(x float64) string {
	// Minimal fixed-format rendering, adequate for demo/log output; this
	// type never round-trips through a parser within the core.
	return strconv.FormatFloat(x, 'g', -1, 64)
}
