package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/katalvlaran/dsbelief/mass"
)

var (
	combineRule    string
	combineSources []string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine two or more sources of evidence",
	Long: `combine parses one discrete mass function per --source flag (each a
comma-separated "bitmask:value" list over the --frame atom count) and
applies the named combination rule to all of them together; at least two
sources are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := parseSources(frameSize, combineSources)
		if err != nil {
			return err
		}
		if logger != nil {
			logger.Debug("combining sources", zap.Int("count", len(sources)), zap.String("rule", combineRule))
		}
		result, err := mass.Combine(mass.Rule(combineRule), sources...)
		if err != nil {
			return err
		}
		printMassFunction(result)
		return nil
	},
}

func init() {
	combineCmd.Flags().StringVar(&combineRule, "rule", string(mass.RuleDempster),
		"combination rule: smets, dempster, disjunctive, yager, dubois-prade, average, murphy, chen")
	combineCmd.Flags().StringArrayVar(&combineSources, "source", nil,
		`a mass function as "bitmask:value,bitmask:value,..." (repeatable)`)
}

func printMassFunction(m *mass.MassFunction[*element.DiscreteElement]) {
	bold := color.New(color.Bold)
	for _, f := range m.Focals() {
		bold.Printf("%-16s", f.Element.String())
		fmt.Printf("%.6f\n", f.Value)
	}
	if !m.HasValidSum() {
		color.Yellow("warning: focal values sum to %.6f, not 1", sumValues(m))
	}
}

func sumValues(m *mass.MassFunction[*element.DiscreteElement]) float64 {
	sum := 0.0
	for _, f := range m.Focals() {
		sum += f.Value
	}
	return sum
}
