// Package mass_test provides examples demonstrating how to use MassFunction.
// Each example is runnable via "go test -run Example", showing both code and
// expected output.
package mass_test

import (
	"fmt"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/katalvlaran/dsbelief/mass"
)

// ExampleMassFunction_combinationDempster builds two sources of evidence over
// a 2-atom "Yes"/"No" frame and combines them first with the unnormalised
// Smets rule, then with Dempster's rule (Smets with the empty focal removed
// and the rest renormalised).
func ExampleMassFunction_combinationDempster() {
	yes, _ := element.FromNumber(2, 0b01)
	no, _ := element.FromNumber(2, 0b10)
	both, _ := element.FromNumber(2, 0b11)
	empty, _ := element.Empty(2)

	m1, _ := mass.FromFocals(
		mass.FocalElement[*element.DiscreteElement]{Element: yes, Value: 0.2},
		mass.FocalElement[*element.DiscreteElement]{Element: no, Value: 0.2},
		mass.FocalElement[*element.DiscreteElement]{Element: both, Value: 0.6},
	)
	m2, _ := mass.FromFocals(
		mass.FocalElement[*element.DiscreteElement]{Element: yes, Value: 0.2},
		mass.FocalElement[*element.DiscreteElement]{Element: no, Value: 0.6},
		mass.FocalElement[*element.DiscreteElement]{Element: both, Value: 0.2},
	)

	smets, err := mass.CombinationSmets(m1, m2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("smets: Yes=%.2f No=%.2f Both=%.2f conflict=%.2f\n",
		smets.Mass(yes), smets.Mass(no), smets.Mass(both), smets.Mass(empty))

	combined, err := mass.CombinationDempster(m1, m2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dempster: Yes=%.2f No=%.2f Both=%.2f\n",
		combined.Mass(yes), combined.Mass(no), combined.Mass(both))
	// Output:
	// smets: Yes=0.20 No=0.52 Both=0.12 conflict=0.16
	// dempster: Yes=0.24 No=0.62 Both=0.14
}

// ExampleMassFunction_Bel demonstrates the belief, plausibility and
// pignistic criteria on the 2-atom "Yes"/"No" frame used by the other
// examples.
func ExampleMassFunction_Bel() {
	yes, _ := element.FromNumber(2, 0b01)
	no, _ := element.FromNumber(2, 0b10)
	both, _ := element.FromNumber(2, 0b11)

	m, _ := mass.FromFocals(
		mass.FocalElement[*element.DiscreteElement]{Element: yes, Value: 0.1},
		mass.FocalElement[*element.DiscreteElement]{Element: no, Value: 0.3},
		mass.FocalElement[*element.DiscreteElement]{Element: both, Value: 0.6},
	)

	fmt.Printf("bel(Yes)=%.1f pl(Yes)=%.1f BetP(Yes)=%.1f\n", m.Bel(yes), m.Pl(yes), m.BetP(yes))
	// Output: bel(Yes)=0.1 pl(Yes)=0.7 BetP(Yes)=0.4
}

// ExampleMassFunction_Discounting shows a source's opinion softened toward
// total ignorance to model imperfect reliability.
func ExampleMassFunction_Discounting() {
	yes, _ := element.FromNumber(2, 0b01)
	no, _ := element.FromNumber(2, 0b10)
	both, _ := element.FromNumber(2, 0b11)

	m, _ := mass.FromFocals(
		mass.FocalElement[*element.DiscreteElement]{Element: yes, Value: 0.1},
		mass.FocalElement[*element.DiscreteElement]{Element: no, Value: 0.3},
		mass.FocalElement[*element.DiscreteElement]{Element: both, Value: 0.6},
	)

	discounted, _ := m.Discounting(0.1)
	fmt.Printf("Yes=%.2f No=%.2f Both=%.2f\n", discounted.Mass(yes), discounted.Mass(no), discounted.Mass(both))
	// Output: Yes=0.09 No=0.27 Both=0.64
}
