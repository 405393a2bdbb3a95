// Package config loads elbow's TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/elbow/config.toml, falling back to
// ~/.config/elbow/config.toml. A missing default file is not an error; every
// key has a default, and command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/elbow/pkg/elbow"
	errs "github.com/matzehuels/elbow/pkg/errors"
)

const appName = "elbow"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full configuration file.
type Config struct {
	Route  Route  `toml:"route"`
	Output Output `toml:"output"`
	Batch  Batch  `toml:"batch"`
	Server Server `toml:"server"`
}

// Route holds routing defaults. A nil Clearance selects the proportional
// default computed per connector.
type Route struct {
	Clearance *float64 `toml:"clearance,omitempty"`
	Bias      float64  `toml:"bias"`
}

type Output struct {
	Format string `toml:"format"`
}

// Batch configures the batch runner. Zero workers selects one per CPU.
type Batch struct {
	Workers int `toml:"workers"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Route:  Route{Bias: elbow.DefaultBias},
		Output: Output{Format: FormatText},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the path of the default configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration at path on top of [Default].
//
// An empty path selects [DefaultPath], which may be absent. An explicit path
// must exist. Unknown keys and invalid values are rejected with
// INVALID_CONFIG.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text on top of [Default] and validates the result.
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value for range errors.
func (c *Config) Validate() error {
	if c.Route.Clearance != nil {
		if err := errs.ValidateClearance(*c.Route.Clearance); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "route.clearance")
		}
	}
	if err := errs.ValidateBias(c.Route.Bias); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "route.bias")
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "output.format: unknown format %q (want text or json)", c.Output.Format)
	}
	if err := errs.ValidateWorkers(c.Batch.Workers); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "batch.workers")
	}
	if c.Server.Addr == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server timeouts must be non-negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// RouteOptions converts the route section into router options.
func (c *Config) RouteOptions() []elbow.Option {
	opts := []elbow.Option{elbow.WithBias(c.Route.Bias)}
	if c.Route.Clearance != nil {
		opts = append(opts, elbow.WithClearance(*c.Route.Clearance))
	}
	return opts
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
