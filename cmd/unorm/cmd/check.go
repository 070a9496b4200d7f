package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbryio/unorm/conformance"
	"github.com/lbryio/unorm/normalization"
	"github.com/lbryio/unorm/ucd"
)

var checkMaxFailures int

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkMaxFailures, "max-failures", 20, "Number of failures to print")
}

var checkCmd = &cobra.Command{
	Use:   "check <NormalizationTest.txt>",
	Short: "Run the Unicode normalization conformance tests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open test file: %w", err)
		}
		defer f.Close()

		cases, err := conformance.ParseTests(f)
		if err != nil {
			return fmt.Errorf("parse test file: %w", err)
		}

		n := normalization.NewCachingNormalizer(normalization.New(ucd.Default()), cfg.CacheSize)
		report, err := conformance.Run(context.Background(), n, cases, cfg.Workers)
		if err != nil {
			return fmt.Errorf("run conformance: %w", err)
		}

		showReport(report, checkMaxFailures)
		if !report.Passed() {
			return fmt.Errorf("%d conformance failures", len(report.Failures))
		}
		return nil
	},
}
