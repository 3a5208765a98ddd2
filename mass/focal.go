package mass

import "github.com/katalvlaran/dsbelief/element"

// FocalElement pairs an element with the mass value assigned to it.
// FocalElement has no equality method of its own. MassFunction compares
// focals by Element alone (via Element.Equal): two FocalElements naming the
// same element are "the same focal" regardless of Value, and that
// element-equality is its deduplication key.
type FocalElement[E element.Interface[E]] struct {
	Element E
	Value   float64
}
