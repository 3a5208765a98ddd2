// Package main implements the dsbelief CLI, a small demonstrator for the
// Dempster-Shafer belief-function engine: combine sources of evidence,
// query decision criteria, discount or weaken a source, enumerate a frame's
// power set, and replay a scenario described in a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose   bool
	frameSize int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dsbelief",
	Short: "Dempster-Shafer belief-function toolkit",
	Long: `dsbelief is a command-line demonstrator for the dsbelief library:
combine evidence from several sources, query decision-support criteria,
discount or weaken a source's opinion, enumerate a frame's power set, and
replay a full scenario described in a YAML file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("dsbelief: build logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&frameSize, "frame", "n", 2, "number of atoms in the discrete frame")

	rootCmd.AddCommand(combineCmd, decideCmd, discountCmd, powersetCmd, scenarioCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
