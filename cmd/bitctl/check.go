package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/internal/battery"
	"github.com/joshuapare/bitkit/internal/logger"
)

var (
	checkCases       string
	checkSkipBuiltin bool
	checkFailedOnly  bool
)

var (
	passLabel = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVar(&checkCases, "cases", "", "Also run the cases in this TOML file")
	cmd.Flags().BoolVar(&checkSkipBuiltin, "skip-builtin", false, "Do not run the built-in cases")
	cmd.Flags().BoolVar(&checkFailedOnly, "failed-only", false, "Only print failing cases")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the formatter case battery",
		Long: `The check command runs a battery of known inputs through every formatter
and prints PASS or FAIL per case. It exits non-zero when any case fails.

Cases files hold [[case]] tables:

  [[case]]
  name = "hex byte"
  kind = "hex"      # bin, sbin, hex, bit, field, dump
  value = 18
  width = 8
  want = "0x12"

Example:
  bitctl check
  bitctl check --cases extra.toml
  bitctl check --cases extra.toml --skip-builtin --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
	return cmd
}

func runCheck() error {
	var cases []battery.Case
	if !checkSkipBuiltin {
		cases = append(cases, battery.Default()...)
	}
	if checkCases != "" {
		extra, err := battery.Load(checkCases)
		if err != nil {
			return fmt.Errorf("failed to load cases: %w", err)
		}
		printVerbose("Loaded %d cases from %s\n", len(extra), checkCases)
		cases = append(cases, extra...)
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases to run")
	}

	report := battery.Run(cases)

	if jsonOut {
		results := make([]map[string]interface{}, 0, len(report.Results))
		for _, res := range report.Results {
			results = append(results, map[string]interface{}{
				"name":     res.Case.Name,
				"kind":     res.Case.Kind,
				"expected": res.Case.Expected(),
				"got":      res.Got,
				"error":    res.ErrName(),
				"pass":     res.Pass,
			})
		}
		if err := printJSON(map[string]interface{}{
			"passed":  report.Passed(),
			"failed":  report.Failed(),
			"results": results,
		}); err != nil {
			return err
		}
	} else {
		for _, res := range report.Results {
			printResult(res)
		}
		printInfo("\n%d passed, %d failed\n", report.Passed(), report.Failed())
	}

	if !report.OK() {
		for _, res := range report.Results {
			if !res.Pass {
				logger.Error("case failed", "name", res.Case.Name, "kind", string(res.Case.Kind),
					"want", res.Case.Expected(), "got", res.Got, "err", res.ErrName())
			}
		}
		return fmt.Errorf("%d of %d cases failed", report.Failed(), len(report.Results))
	}
	return nil
}

func printResult(res battery.Result) {
	if res.Pass {
		if !checkFailedOnly {
			printInfo("%s %-6s %s\n", passLabel.Sprint("PASS"), res.Case.Kind, res.Case.Name)
		}
		return
	}

	got := fmt.Sprintf("%q", res.Got)
	if res.Err != nil {
		got = fmt.Sprintf("error %s (%v)", res.ErrName(), res.Err)
	}
	printInfo("%s %-6s %s: want %q, got %s\n",
		failLabel.Sprint("FAIL"), res.Case.Kind, res.Case.Name, res.Case.Expected(), got)
}
