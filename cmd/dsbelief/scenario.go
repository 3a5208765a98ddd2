package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsbelief/mass"
	"github.com/katalvlaran/dsbelief/powerset"
)

// scenarioFile is the YAML shape accepted by "dsbelief scenario run": a
// frame size, a combination rule, the sources to fold together, and the
// decision criterion/cardinality to report on the result.
type scenarioFile struct {
	Frame     int      `yaml:"frame"`
	Rule      string   `yaml:"rule"`
	Sources   []string `yaml:"sources"`
	Criterion string   `yaml:"criterion"`
	MaxCard   int      `yaml:"max_card"`
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Replay a combine-then-decide scenario described in a YAML file",
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Load a scenario file, combine its sources, and report the decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("dsbelief: read scenario: %w", err)
		}
		var sc scenarioFile
		if err := yaml.Unmarshal(raw, &sc); err != nil {
			return fmt.Errorf("dsbelief: parse scenario: %w", err)
		}
		if sc.Frame <= 0 {
			sc.Frame = frameSize
		}
		if sc.Rule == "" {
			sc.Rule = string(mass.RuleDempster)
		}
		if sc.Criterion == "" {
			sc.Criterion = "betp"
		}
		if sc.MaxCard <= 0 {
			sc.MaxCard = 1
		}
		if logger != nil {
			logger.Info("running scenario",
				zap.String("file", args[0]),
				zap.Int("frame", sc.Frame),
				zap.String("rule", sc.Rule),
				zap.Int("sources", len(sc.Sources)),
			)
		}
		sources, err := parseSources(sc.Frame, sc.Sources)
		if err != nil {
			return err
		}
		combined, err := mass.Combine(mass.Rule(sc.Rule), sources...)
		if err != nil {
			return err
		}
		fmt.Println("combined mass function:")
		printMassFunction(combined)

		crit, err := criterionByName(sc.Criterion)
		if err != nil {
			return err
		}
		set, err := powerset.PartialPowerSet(sc.Frame, sc.MaxCard)
		if err != nil {
			return err
		}
		winners, err := mass.GetMax(combined, crit, sc.MaxCard, set)
		if err != nil {
			return err
		}
		fmt.Printf("\nwinning hypothesis by %s:\n", sc.Criterion)
		printWinners(winners)
		return nil
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioRunCmd)
}
