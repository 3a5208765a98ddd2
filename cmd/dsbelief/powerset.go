package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsbelief/powerset"
)

var powersetMaxCard int

var powersetCmd = &cobra.Command{
	Use:   "powerset",
	Short: "Enumerate the power set of the --frame atom count",
	Long: `powerset lists every subset of an n-atom frame with cardinality at most
--max-card (default: the full power set, 2^n elements — beware large
frames).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxCard := powersetMaxCard
		if maxCard <= 0 {
			maxCard = frameSize
		}
		set, err := powerset.PartialPowerSet(frameSize, maxCard)
		if err != nil {
			return err
		}
		for _, e := range set.Elements() {
			fmt.Println(e)
		}
		return nil
	},
}

func init() {
	powersetCmd.Flags().IntVar(&powersetMaxCard, "max-card", 0, "maximum subset cardinality (0 means the full frame size)")
}
