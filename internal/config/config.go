// Package config loads qtree settings from a JSON file and QTREE_*
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/natalyag236/quadtree"
	"github.com/natalyag236/quadtree/internal/logger"
)

const (
	EnvConfigPath     = "QTREE_CONFIG"
	EnvPrefix         = "QTREE_"
	defaultConfigPath = "./qtree.json"
)

type Bounds struct {
	X      float64 `json:"x" mapstructure:"x"`
	Y      float64 `json:"y" mapstructure:"y"`
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

type Config struct {
	Bounds      Bounds        `json:"bounds" mapstructure:"bounds"`
	Capacity    int           `json:"capacity" mapstructure:"capacity"`
	MaxDepth    int           `json:"max_depth" mapstructure:"max_depth"`
	HTTPAddress string        `json:"http_address" mapstructure:"http_address"`
	Log         logger.Config `json:"log" mapstructure:"log"`
}

// Default returns the built-in configuration: the (-50,-50) 100x100 region
// with a leaf capacity of 5.
func Default() *Config {
	return &Config{
		Bounds:      Bounds{X: -50, Y: -50, Width: 100, Height: 100},
		Capacity:    quadtree.DefaultCapacity,
		MaxDepth:    quadtree.DefaultMaxDepth,
		HTTPAddress: "127.0.0.1:8080",
		Log:         logger.Default(),
	}
}

// Load reads the config at path. An empty path falls back to QTREE_CONFIG and
// then ./qtree.json; a missing file yields the defaults. Environment
// variables override file values in both cases.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		if envPath := os.Getenv(EnvConfigPath); envPath != "" {
			path = envPath
			explicit = true
		} else {
			path = defaultConfigPath
		}
	}

	raw := map[string]any{}
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		data = ReplaceEnvVars(data)
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := decode(raw, cfg, true); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	env := map[string]any{}
	applyEnv(env, os.Environ())
	if err := decode(env, cfg, false); err != nil {
		return nil, fmt.Errorf("decode %s* environment: %w", EnvPrefix, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode merges raw into cfg. Strict decoding rejects keys that match no
// field; environment overrides are not strict since unrelated QTREE_*
// variables may be set.
func decode(raw map[string]any, cfg *Config, strict bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// applyEnv copies QTREE_* variables into raw. Nested keys use a double
// underscore: QTREE_BOUNDS__WIDTH=200, QTREE_LOG__LEVEL=debug.
func applyEnv(raw map[string]any, environ []string) {
	for _, e := range environ {
		if !strings.HasPrefix(e, EnvPrefix) {
			continue
		}
		kv := strings.SplitN(e, "=", 2)
		if len(kv) != 2 || kv[0] == EnvConfigPath {
			continue
		}
		path := strings.Split(strings.ToLower(strings.TrimPrefix(kv[0], EnvPrefix)), "__")
		m := raw
		for _, key := range path[:len(path)-1] {
			next, ok := m[key].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[key] = next
			}
			m = next
		}
		m[path[len(path)-1]] = ParseEnvValue(kv[1])
	}
}

// ParseEnvValue interprets "true", "12", "1.5" and falls back to the string.
func ParseEnvValue(v string) any {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "true") {
		return true
	}
	if strings.EqualFold(v, "false") {
		return false
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ReplaceEnvVars expands ${VAR} references in the raw file. Bare $VAR is
// left alone.
func ReplaceEnvVars(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(ref[2 : len(ref)-1])))
	})
}

func (c *Config) Validate() error {
	if c.Bounds.Width <= 0 || c.Bounds.Height <= 0 {
		return fmt.Errorf("config: bounds must have positive width and height, got %vx%v", c.Bounds.Width, c.Bounds.Height)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("config: capacity must be at least 1, got %d", c.Capacity)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Boundary is the tree region described by Bounds.
func (c *Config) Boundary() quadtree.BoundingBox {
	return quadtree.BoundingBox{X: c.Bounds.X, Y: c.Bounds.Y, Width: c.Bounds.Width, Height: c.Bounds.Height}
}

// NewTree builds an empty tree from the config.
func (c *Config) NewTree() *quadtree.Quadtree {
	return quadtree.New(c.Boundary(), quadtree.WithCapacity(c.Capacity), quadtree.WithMaxDepth(c.MaxDepth))
}
