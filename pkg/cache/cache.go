// Package cache stores rendered chain artifacts between runs.
//
// # Backends
//
//   - [FileCache]: zstd-compressed entries under a directory, for the CLI
//   - [RedisCache]: shared cache for several server instances
//   - [NullCache]: never stores anything, used with --no-cache
//
// All backends implement [Cache] and are safe for concurrent use.
//
// # Keys
//
// A [Keyer] derives keys from a content hash of the input and the options
// that change the output bytes. Wrap it with [NewScopedKeyer] to namespace
// keys when several deployments share one Redis database.
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(chainJSON), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found. Expired and
	// unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey keys a rendered chain by the hash of its chain file.
	ArtifactKey(chainHash string, opts ArtifactKeyOpts) string

	// SmoothKey keys a smoothed signal by the hash of its samples.
	SmoothKey(signalHash string, opts SmoothKeyOpts) string
}

// ArtifactKeyOpts lists the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Engine      string  `json:"engine"`
	Scale       float64 `json:"scale,omitempty"`
	Transparent bool    `json:"transparent,omitempty"`
}

// SmoothKeyOpts lists the smoothing parameters.
type SmoothKeyOpts struct {
	WindowLen int    `json:"window_len"`
	Window    string `json:"window"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(chainHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chainHash, opts)
}

func (DefaultKeyer) SmoothKey(signalHash string, opts SmoothKeyOpts) string {
	return hashKey("smooth", signalHash, opts)
}

// TTLs for the two kinds of entries.
const (
	ArtifactTTL = 7 * 24 * time.Hour
	SmoothTTL   = 24 * time.Hour
)
