// Package element implements the Element capability used throughout this
// module: a compact representation of a subset of a finite frame of
// discernment, with constant- or near-constant-time conjunction,
// disjunction, opposite, subset testing, and cardinality.
//
// Two concrete implementations satisfy the capability:
//
//   - DiscreteElement: a bit-packed subset of {0,...,n-1}, backed by a
//     []uint64 word vector (O(ceil(n/64)) algebra).
//   - IntervalElement: a sorted, merged, finite union of interval.Interval,
//     algebra over the reals.
//
// The capability is expressed as a Go generic constraint, Interface[E],
// rather than a runtime interface dispatched dynamically per call: the
// mass package's combination routines run this algebra in their innermost
// loop, and lvlath's own dynamic-dispatch Matrix interface is exactly the
// shape that hot path should avoid. Both DiscreteElement and
// IntervalElement are used through pointer receivers, mirroring the
// pointer-receiver convention lvlath uses throughout (*Dense, *Graph) —
// this is also what lets DiscreteElement memoise its cardinality in place.
package element
