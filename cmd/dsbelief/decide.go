package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/katalvlaran/dsbelief/mass"
	"github.com/katalvlaran/dsbelief/powerset"
)

var (
	decideSource    string
	decideCriterion string
	decideMaxCard   int
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Rank the candidate hypotheses of a source by a decision criterion",
	Long: `decide evaluates --criterion (bel, pl, q or betp) over every element of
the --frame power set with cardinality at most --max-card, and prints the
elements attaining the maximum value, highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := parseSource(frameSize, decideSource)
		if err != nil {
			return err
		}
		crit, err := criterionByName(decideCriterion)
		if err != nil {
			return err
		}
		set, err := powerset.PartialPowerSet(frameSize, decideMaxCard)
		if err != nil {
			return err
		}
		winners, err := mass.GetMax(m, crit, decideMaxCard, set)
		if err != nil {
			return err
		}
		printWinners(winners)
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideSource, "source", "", `a mass function as "bitmask:value,..."`)
	decideCmd.Flags().StringVar(&decideCriterion, "criterion", "betp", "decision criterion: bel, pl, q, betp")
	decideCmd.Flags().IntVar(&decideMaxCard, "max-card", 1, "maximum cardinality of candidate hypotheses")
}

func criterionByName(name string) (mass.Criterion[*element.DiscreteElement], error) {
	switch name {
	case "bel":
		return func(m *mass.MassFunction[*element.DiscreteElement], e *element.DiscreteElement) float64 { return m.Bel(e) }, nil
	case "pl":
		return func(m *mass.MassFunction[*element.DiscreteElement], e *element.DiscreteElement) float64 { return m.Pl(e) }, nil
	case "q":
		return func(m *mass.MassFunction[*element.DiscreteElement], e *element.DiscreteElement) float64 { return m.Q(e) }, nil
	case "betp":
		return func(m *mass.MassFunction[*element.DiscreteElement], e *element.DiscreteElement) float64 { return m.BetP(e) }, nil
	default:
		return nil, fmt.Errorf("dsbelief: unknown criterion %q", name)
	}
}

func printWinners(winners []mass.FocalElement[*element.DiscreteElement]) {
	green := color.New(color.FgGreen, color.Bold)
	if len(winners) == 0 {
		color.Yellow("no candidate hypothesis attains a nonzero maximum")
		return
	}
	for _, w := range winners {
		green.Printf("%-16s", w.Element.String())
		fmt.Printf("%.6f\n", w.Value)
	}
}
