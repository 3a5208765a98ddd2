// Package mass implements MassFunction[E], the focal-set data structure at
// the heart of this module: canonical add/remove/clean/normalise semantics,
// belief/plausibility/commonality/pignistic decision criteria, discounting,
// weakening, conditioning, the eight combination rules (Smets, Dempster,
// Disjunctive, Yager, Dubois-Prade, Average, Murphy, Chen), Jousselme
// distance/similarity/support, auto-conflict, and max/min decision extremes.
//
// MassFunction is generic over any element.Interface[E] implementation —
// DiscreteElement or IntervalElement — so the same combination and decision
// code runs over both algebras without duplication, the same way lvlath's
// matrix package runs its kernels generically over any matrix.Matrix
// implementation.
package mass
