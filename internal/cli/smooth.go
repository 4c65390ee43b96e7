package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/signal"
)

// smoothOpts holds the command-line flags for the smooth command.
type smoothOpts struct {
	output    string // output file; empty writes to stdout in the input format
	windowLen int    // window length in samples
	window    string // window shape
	noCache   bool   // skip the result cache
}

// smoothCommand creates the smooth command.
func (c *CLI) smoothCommand() *cobra.Command {
	var opts smoothOpts

	cmd := &cobra.Command{
		Use:   "smooth <signal.json|signal.csv>",
		Short: "Smooth a 1-D signal with a moving window",
		Long: `Smooth a 1-D signal by convolving it with a normalized window.

The signal is read from JSON ({"signal": [...]} or a bare array) or from the
first column of a CSV file. The output format follows the output file
extension; without -o the result is written to stdout in the input's format.`,
		Example: `  chainviz smooth trace.csv -o trace_smooth.csv
  chainviz smooth trace.json --window-len 21 --window blackman`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window-len") {
				opts.windowLen = c.cfg.Smooth.WindowLen
			}
			if !cmd.Flags().Changed("window") {
				opts.window = c.cfg.Smooth.Window
			}
			return c.runSmooth(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.json or .csv)")
	cmd.Flags().IntVar(&opts.windowLen, "window-len", signal.DefaultWindowLen, "window length in samples")
	cmd.Flags().StringVar(&opts.window, "window", signal.DefaultWindow.String(), "window: flat, hanning, hamming, bartlett, blackman")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// runSmooth reads the signal, smooths it and writes the result.
func (c *CLI) runSmooth(ctx context.Context, input string, opts *smoothOpts) error {
	logger := loggerFromContext(ctx)

	spinner := newSpinnerWithContext(ctx, "Reading "+filepath.Base(input)+"...")
	spinner.Start()
	defer spinner.Stop()

	x, err := pkgio.ImportSignal(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded signal", "file", input, "samples", len(x))

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner.SetMessage(fmt.Sprintf("Smoothing %d samples...", len(x)))
	y, cached, err := runner.Smooth(ctx, x, opts.windowLen, opts.window)
	if err != nil {
		return err
	}
	spinner.Stop()

	if opts.output == "" {
		return pkgio.WriteSignal(y, os.Stdout, pkgio.FormatFor(input))
	}
	if err := pkgio.ExportSignal(y, opts.output); err != nil {
		return err
	}

	before, err := signal.Summarize(x)
	if err != nil {
		return err
	}
	after, err := signal.Summarize(y)
	if err != nil {
		return err
	}

	printSuccess("Smoothed %s", filepath.Base(input))
	printFile(opts.output)
	printKeyValue("window", fmt.Sprintf("%s, %d samples", opts.window, opts.windowLen))
	printKeyValue("input", formatSummary(before))
	printKeyValue("output", formatSummary(after))
	printSampleStats(len(y), cached)
	return nil
}

// formatSummary renders a summary on one line.
func formatSummary(s signal.Summary) string {
	return fmt.Sprintf("mean %.4g  std %.4g  min %.4g  max %.4g", s.Mean, s.StdDev, s.Min, s.Max)
}
