// Package reflist provides ReferenceList, an ordered, duplicate-free list of
// string labels naming the atoms of a finite frame of discernment.
//
// A ReferenceList never participates in frame-compatibility checks: two
// elements built over frames of the same size are compatible regardless of
// their labels. Labels exist purely for human-facing construction and
// display (see element.FromLabels).
package reflist
