package pipeline

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chainviz/pkg/array"
	"github.com/matzehuels/chainviz/pkg/cache"
	"github.com/matzehuels/chainviz/pkg/observability"
	"github.com/matzehuels/chainviz/pkg/signal"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeArtifact = "artifact"
	keyTypeSmooth   = "smooth"
)

// Runner executes the pipeline with an artifact cache in front.
//
// The Runner holds no per-run state. Multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer uses [cache.DefaultKeyer], a nil
// cache disables caching and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute builds the chain graph and renders every requested format. When
// all formats are cached and Refresh is off, no rendering happens.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	chainHash, err := cache.HashJSON(opts.Chain)
	if err != nil {
		return nil, err
	}
	result := &Result{ChainHash: chainHash}

	buildStart := time.Now()
	g, err := BuildGraph(ctx, opts.Chain)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.States = g.N()
	result.Stats.Edges = len(g.Edges)
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Debug("built chain graph",
		"states", result.Stats.States,
		"edges", result.Stats.Edges,
		"duration", result.Stats.BuildTime)

	if !opts.Refresh {
		if artifacts, ok := r.lookup(ctx, chainHash, opts); ok {
			r.Logger.Debug("artifacts from cache", "formats", opts.Formats)
			result.Artifacts = artifacts
			result.CacheHit = true
			return result, nil
		}
	}

	renderStart := time.Now()
	artifacts, err := Render(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(chainHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
	}

	r.Logger.Info("rendered chain",
		"formats", opts.Formats,
		"engine", opts.Engine,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// lookup returns the cached artifacts if every format is present.
func (r *Runner) lookup(ctx context.Context, chainHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(chainHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
		artifacts[format] = data
	}
	return artifacts, true
}

// Smooth smooths x with the named window, caching the result. The boolean
// reports a cache hit. Samples may be NaN or infinite.
func (r *Runner) Smooth(ctx context.Context, x []float64, windowLen int, window string) ([]float64, bool, error) {
	key := r.Keyer.SmoothKey(cache.HashFloats(x), cache.SmoothKeyOpts{WindowLen: windowLen, Window: window})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if y, ok := decodeSamples(data); ok {
			observability.Cache().OnCacheHit(ctx, keyTypeSmooth)
			return y, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, keyTypeSmooth)

	out, err := signal.Smooth(array.FromSlice(x), windowLen, window)
	if err != nil {
		return nil, false, err
	}
	y := out.Data()

	data := encodeSamples(y)
	if err := r.Cache.Set(ctx, key, data, cache.SmoothTTL); err != nil {
		r.Logger.Warn("cache write failed", "key", keyTypeSmooth, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeSmooth, len(data))
	}
	return y, false, nil
}

// encodeSamples stores x as little-endian float64 bits, eight bytes each.
func encodeSamples(x []float64) []byte {
	data := make([]byte, 0, 8*len(x))
	for _, v := range x {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
	}
	return data
}

func decodeSamples(data []byte) ([]float64, bool) {
	if len(data)%8 != 0 {
		return nil, false
	}
	x := make([]float64, len(data)/8)
	for i := range x {
		x[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return x, true
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
