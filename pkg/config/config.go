// Package config loads chainviz defaults from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/chainviz/config.toml (or
// ~/.config/chainviz/config.toml). Every key is optional; command-line flags
// override whatever the file sets.
//
//	[render]
//	formats = ["svg", "png"]
//	engine = "native"
//	scale = 2.0
//	node_color = "lightblue"
//	threshold = 1e-6
//
//	[smooth]
//	window_len = 11
//	window = "hanning"
//
//	[cache]
//	backend = "file"        # file, redis or none
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chainviz/pkg/errors"
	"github.com/matzehuels/chainviz/pkg/markov"
	"github.com/matzehuels/chainviz/pkg/signal"
)

const appName = "chainviz"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the whole configuration file.
type Config struct {
	Render RenderConfig `toml:"render"`
	Smooth SmoothConfig `toml:"smooth"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds defaults for the render command and endpoint.
type RenderConfig struct {
	Formats     []string `toml:"formats"`
	Engine      string   `toml:"engine"`
	Scale       float64  `toml:"scale"`
	Transparent bool     `toml:"transparent"`
	NodeColor   string   `toml:"node_color"`
	Threshold   float64  `toml:"threshold"`
}

// SmoothConfig holds smoothing defaults.
type SmoothConfig struct {
	WindowLen int    `toml:"window_len"`
	Window    string `toml:"window"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Prefix        string `toml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Formats:   []string{"svg"},
			Engine:    "native",
			Scale:     2.0,
			NodeColor: markov.DefaultNodeColor,
			Threshold: markov.DefaultThreshold,
		},
		Smooth: SmoothConfig{
			WindowLen: signal.DefaultWindowLen,
			Window:    signal.DefaultWindow.String(),
		},
		Cache: CacheConfig{
			Backend: BackendFile,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			MaxBodyBytes: 8 << 20,
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the default file cache directory.
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the config file at path over the defaults. An empty path reads
// the default location, where a missing file is not an error. Unknown keys
// are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, cfg.Validate()
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be fixed by a default.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Render.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render.scale must be positive, got %g", c.Render.Scale)
	}
	if _, err := signal.ParseWindow(c.Smooth.Window); err != nil {
		return err
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_bytes must be positive")
	}
	return nil
}
