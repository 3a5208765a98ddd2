package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	discountSource string
	discountAlpha  float64
	discountWeaken bool
)

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Discount or weaken a single source of evidence",
	Long: `discount scales a source's masses by (1-alpha). By default the freed
mass alpha is moved to the complete element (discounting, for a
partially-reliable source); --weaken moves it to the empty element instead
(weakening, for a source that may be lying).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := parseSource(frameSize, discountSource)
		if err != nil {
			return err
		}
		if logger != nil {
			logger.Debug("discounting", zap.Float64("alpha", discountAlpha), zap.Bool("weaken", discountWeaken))
		}
		if discountWeaken {
			w, err := m.Weakening(discountAlpha)
			if err != nil {
				return err
			}
			printMassFunction(w)
			return nil
		}
		d, err := m.Discounting(discountAlpha)
		if err != nil {
			return err
		}
		printMassFunction(d)
		return nil
	},
}

func init() {
	discountCmd.Flags().StringVar(&discountSource, "source", "", `a mass function as "bitmask:value,..."`)
	discountCmd.Flags().Float64Var(&discountAlpha, "alpha", 0.1, "discount/weaken factor in [0,1]")
	discountCmd.Flags().BoolVar(&discountWeaken, "weaken", false, "weaken (move mass to the empty set) instead of discount")
}
