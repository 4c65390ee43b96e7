package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file (single format) or base path (multiple)
	formats     []string // svg, png, pdf, dot
	engine      string   // native or graphviz
	scale       float64  // PNG scale factor
	transparent bool     // transparent PNG background
	timescale   bool     // label edges with timescales instead of probabilities
	threshold   float64  // hide transitions at or below this probability
	color       string   // node fill color
	noCache     bool     // skip the artifact cache
	open        bool     // open the first artifact in the system viewer
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <chain.json>",
		Short: "Render a Markov chain to SVG, PNG, PDF or DOT",
		Long: `Render a Markov chain file as a state diagram.

The chain file holds the transition matrix and optional drawing options:

  {"matrix": [[0.9, 0.1], [0.3, 0.7]], "labels": {"0": "Open", "1": "Closed"}}

Flags override values from the file, which override the config file.`,
		Example: `  chainviz render chain.json
  chainviz render chain.json -f svg,png --timescale
  chainviz render chain.json --engine graphviz -f dot -o chain.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg.Render
			if !cmd.Flags().Changed("format") {
				opts.formats = cfg.Formats
			} else {
				opts.formats = parseFormats(formatsStr)
			}
			if !cmd.Flags().Changed("engine") {
				opts.engine = cfg.Engine
			}
			if !cmd.Flags().Changed("scale") {
				opts.scale = cfg.Scale
			}
			if !cmd.Flags().Changed("transparent") {
				opts.transparent = cfg.Transparent
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateEngine(opts.engine); err != nil {
				return err
			}

			chain, err := pkgio.ImportChain(args[0])
			if err != nil {
				return err
			}
			c.applyChainOverrides(cmd, chain, &opts)

			return c.runRender(cmd.Context(), args[0], chain, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", pipeline.EngineNative, "renderer: native, graphviz")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "transparent PNG background")
	cmd.Flags().BoolVar(&opts.timescale, "timescale", false, "label edges with timescales (dt/-ln(1-p))")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", 0, "hide transitions with probability at or below this value")
	cmd.Flags().StringVar(&opts.color, "color", "", "node fill color (name or hex)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the result in the system viewer")

	return cmd
}

// applyChainOverrides layers config defaults and explicit flags over the
// chain file's drawing options.
func (c *CLI) applyChainOverrides(cmd *cobra.Command, chain *pkgio.Chain, opts *renderOpts) {
	cfg := c.cfg.Render
	if chain.NodeColor == "" {
		chain.NodeColor = cfg.NodeColor
	}
	if chain.Threshold == nil {
		t := cfg.Threshold
		chain.Threshold = &t
	}

	if cmd.Flags().Changed("color") {
		chain.NodeColor = opts.color
	}
	if cmd.Flags().Changed("threshold") {
		t := opts.threshold
		chain.Threshold = &t
	}
	if cmd.Flags().Changed("timescale") {
		chain.UseTimescale = opts.timescale
	}
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, ...), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its file. A single format written to an
// explicit output keeps that exact path.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, chain *pkgio.Chain, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Rendering %s", input)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Chain:       chain,
		Formats:     opts.formats,
		Engine:      opts.engine,
		Scale:       opts.scale,
		Transparent: opts.transparent,
		Refresh:     opts.noCache,
		Logger:      logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))

	paths := outputPaths(opts.output, input, opts.formats)
	written := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		path := paths[format]
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		written = append(written, path)
	}

	printSuccess("Rendered %s", filepath.Base(input))
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Stats.States, result.Stats.Edges, result.CacheHit)

	if opts.open && len(written) > 0 {
		if err := openFile(written[0]); err != nil {
			printWarning("Could not open %s: %v", written[0], err)
		}
	}
	return nil
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// openFile hands path to the platform's default viewer without waiting.
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
