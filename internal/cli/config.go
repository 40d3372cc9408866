package cli

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/perclearn"
)

// ErrBadOffset is returned for an offset that is not "x,y".
var ErrBadOffset = errors.New("cli: offset must be x,y")

// Config is the perclearn.toml file layout. Command-line flags override it.
//
// Example:
//
//	seed = 42
//
//	[noise]
//	rows = 56
//	cols = 56
//	beta = -1.0
//
//	[composite]
//	radius = 10.0
//
//	[dataset]
//	offsets = [[0, 0], [14, 14], [28, 28]]
//	rotate = true
//	labeled = true
//	workers = 4
//
//	[output]
//	format = "png"
//	upscale = 4
type Config struct {
	// Seed fixes the random generator. Nil means a fresh seed per run.
	Seed *uint64 `toml:"seed"`

	Noise     NoiseConfig     `toml:"noise"`
	Composite CompositeConfig `toml:"composite"`
	Dataset   DatasetConfig   `toml:"dataset"`
	Output    OutputConfig    `toml:"output"`
}

// NoiseConfig configures standalone noise fields.
type NoiseConfig struct {
	Rows int     `toml:"rows"`
	Cols int     `toml:"cols"`
	Beta float64 `toml:"beta"`
}

// CompositeConfig configures the radial mask. Nil fields use the
// automatic center and radius.
type CompositeConfig struct {
	Radius  *float64 `toml:"radius"`
	CenterX *float64 `toml:"center_x"`
	CenterY *float64 `toml:"center_y"`
}

// DatasetConfig configures dataset augmentation.
type DatasetConfig struct {
	Offsets        [][2]int `toml:"offsets"`
	Rotate         bool     `toml:"rotate"`
	QuarterTurns   *int     `toml:"quarter_turns"`
	BackgroundSize int      `toml:"background_size"`
	Labeled        bool     `toml:"labeled"`
	Workers        int      `toml:"workers"`
}

// OutputConfig configures written images.
type OutputConfig struct {
	Format  string `toml:"format"`
	Upscale int    `toml:"upscale"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Noise: NoiseConfig{
			Rows: perclearn.DefaultNoiseSize,
			Cols: perclearn.DefaultNoiseSize,
			Beta: perclearn.DefaultBeta,
		},
		Dataset: DatasetConfig{
			Offsets: [][2]int{{0, 0}},
			Workers: 1,
		},
		Output: OutputConfig{
			Format:  "png",
			Upscale: 1,
		},
	}
}

// LoadConfig reads a TOML file over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cli: read config: %w", err)
	}
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("cli: parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("cli: config %s: unknown key %q", path, undecoded[0].String())
	}
	return c, nil
}

// MaskOptions converts the composite section to mask options.
func (c *Config) MaskOptions() []perclearn.MaskOption {
	var opts []perclearn.MaskOption
	if c.Composite.Radius != nil {
		opts = append(opts, perclearn.WithRadius(*c.Composite.Radius))
	}
	if c.Composite.CenterX != nil && c.Composite.CenterY != nil {
		opts = append(opts, perclearn.WithCenter(*c.Composite.CenterX, *c.Composite.CenterY))
	}
	return opts
}

// Points converts the configured offsets to image points.
func (d DatasetConfig) Points() []image.Point {
	pts := make([]image.Point, len(d.Offsets))
	for i, o := range d.Offsets {
		pts[i] = image.Pt(o[0], o[1])
	}
	return pts
}

// parseOffsets parses "x,y;x,y;..." into offset pairs.
func parseOffsets(s string) ([][2]int, error) {
	var out [][2]int
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadOffset, part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadOffset, part)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadOffset, part)
		}
		out = append(out, [2]int{x, y})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}
	return out, nil
}
