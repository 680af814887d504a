package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kitcheck/core/evaluator"
	"kitcheck/core/output"
	"kitcheck/core/parser"
	"kitcheck/core/types"
	"kitcheck/internal/config"
	"kitcheck/internal/logging"
)

var (
	formatFlag  string
	detailsFlag bool
)

// evaluateCmd runs the full pipeline: read the input document,
// evaluate every kit and print the result
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file]",
	Short: "Evaluate candidate kits and report the best build",
	Long: `Evaluate reads a budget, an inventory of components and a list of
candidate kits from the given file (or stdin when omitted), then
prints the maximum score and the best kit identifier.

A malformed budget or component-count header yields the zero-score,
no-build result; every other malformed record is skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		format := output.Format(formatFlag)
		if formatFlag == "" {
			format = output.Format(cfg.Output.DefaultFormat)
		}
		formatter, err := output.NewRegistry().Get(format)
		if err != nil {
			return err
		}

		in, closeIn, err := openInput(args)
		if err != nil {
			return err
		}
		defer closeIn()

		report := runPipeline(in, cfg)
		if !detailsFlag && !cfg.Output.ShowDetails {
			report.Verdicts = nil
		}

		return formatter.Render(cmd.OutOrStdout(), report)
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&formatFlag, "format", "", "output format (text, json)")
	evaluateCmd.Flags().BoolVar(&detailsFlag, "details", false, "include per-kit verdicts in the output")
}

// runPipeline parses and evaluates one input stream. A header-level
// parse failure is the defined zero/no-build outcome, not an error.
func runPipeline(in io.Reader, cfg *config.Config) evaluator.Report {
	doc, err := parser.ReadDocument(in)
	if err != nil {
		logging.Debug("input aborted to default result", zap.Error(err))
		return evaluator.Report{BestKit: types.NoBuild}
	}
	return evaluator.Run(doc, cfg.Rules.PowerMarginWatts)
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
