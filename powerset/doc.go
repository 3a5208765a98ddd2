// Package powerset provides Set[E], an ordered, duplicate-free,
// compatibility-checked collection of element.Interface values, plus the
// Discrete-specialised generators (atoms, full power set, cardinality-bounded
// partial power set, subsets of a given element) used by decision support.
//
// PowerSet and PartialPowerSet are the one place in this module where 2^n
// cost is accepted — they drain an element.Enumerator into a Set rather
// than ever representing "all subsets" implicitly, for decision-support
// consumers that need a materialised collection instead of a lazy stream.
package powerset
