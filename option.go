package nestfmt

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 64

// Option configures rendering.
type Option func(*config)

type config struct {
	maxDepth  int
	leafWidth int
}

func newConfig(opts []Option) config {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth limits how deeply aggregates may nest. Rendering a deeper
// value fails with [ErrMaxDepth], which also stops values that contain
// themselves. A value below 1 restores [DefaultMaxDepth].
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		c.maxDepth = n
	}
}

// WithLeafWidth truncates scalar renderings wider than n display columns,
// ending them with "...". Zero means no limit.
func WithLeafWidth(n int) Option {
	return func(c *config) {
		c.leafWidth = max(n, 0)
	}
}

func truncateLeaf(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Config is the file form of the rendering options.
type Config struct {
	MaxDepth  int `yaml:"max_depth"`
	LeafWidth int `yaml:"leaf_width"`
}

// LoadConfig decodes a YAML config. An empty document yields the zero
// Config. Unknown keys and negative values are rejected with
// [ErrInvalidConfig].
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if c.MaxDepth < 0 {
		return Config{}, fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.LeafWidth < 0 {
		return Config{}, fmt.Errorf("%w: leaf_width must not be negative, got %d", ErrInvalidConfig, c.LeafWidth)
	}
	return c, nil
}

// Options converts c to rendering options. Zero fields keep the defaults.
func (c Config) Options() []Option {
	var opts []Option
	if c.MaxDepth > 0 {
		opts = append(opts, WithMaxDepth(c.MaxDepth))
	}
	if c.LeafWidth > 0 {
		opts = append(opts, WithLeafWidth(c.LeafWidth))
	}
	return opts
}
