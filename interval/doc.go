// Package interval provides Interval, a closed real interval used as the
// atomic building block of element.IntervalElement (a finite union of
// intervals). It follows the shape of the interval-set abstractions used
// throughout the Go ecosystem for one-dimensional span arithmetic: an
// explicit empty value, an explicit unbounded-complete value, and
// intersection/adjoins as the two operations everything else composes from.
package interval
