// Package pipeline turns chain files into rendered artifacts.
//
// This package implements the build → draw → encode pipeline shared by the
// CLI and the HTTP server, so both produce the same bytes for the same input.
//
// # Architecture
//
//  1. Build: transition matrix and options → [markov.Graph]
//  2. Draw: graph → [figure.Figure] (native engine) or DOT (graphviz engine)
//  3. Encode: SVG, PNG, PDF or DOT bytes
//
// [RenderMarkovChain] runs the first two stages for library callers. A
// [Runner] runs all three with an artifact cache in front.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Chain:   chain,
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
//
// [markov.Graph]: github.com/matzehuels/chainviz/pkg/markov
// [figure.Figure]: github.com/matzehuels/chainviz/pkg/render/figure
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chainviz/pkg/cache"
	"github.com/matzehuels/chainviz/pkg/errors"
	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/markov"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatDOT = "dot"
)

// Engine constants. The native engine draws the figure itself; the graphviz
// engine hands the DOT export to Graphviz.
const (
	EngineNative   = "native"
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
	FormatDOT: true,
}

// ValidEngines is the set of supported drawing engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// =============================================================================
// Options and Results
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	Chain       *pkgio.Chain `json:"chain"`
	Formats     []string     `json:"formats,omitempty"`
	Engine      string       `json:"engine,omitempty"`
	Scale       float64      `json:"scale,omitempty"`
	Transparent bool         `json:"transparent,omitempty"`
	Refresh     bool         `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Graph is the chain graph the artifacts were drawn from.
	Graph *markov.Graph

	// ChainHash is the content hash of the chain file.
	ChainHash string

	// Artifacts maps each requested format to its bytes.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit reports whether every artifact came from the cache.
	CacheHit bool
}

// Stats holds sizes and timings of a run.
type Stats struct {
	States     int
	Edges      int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: svg, png, pdf, dot)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an engine is supported.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidEngine, "invalid engine %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Chain == nil {
		return errors.New(errors.ErrCodeInvalidInput, "chain is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = EngineNative
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:      format,
		Engine:      o.Engine,
		Transparent: o.Transparent,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
