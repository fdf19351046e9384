package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("config: invalid world settings")

// World describes one fixed-size voxel world
type World struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`

	// SlotCapacity bounds the vertex buffer in blocks; 0 means one slot per voxel
	SlotCapacity int `yaml:"slot_capacity"`

	Generation Generation `yaml:"generation"`
	Query      Query      `yaml:"query"`
}

// Generation tunes the terrain generator
type Generation struct {
	HeightFrequency float64 `yaml:"height_frequency"`

	BasinFrequency float64 `yaml:"basin_frequency"`
	BasinThreshold float64 `yaml:"basin_threshold"`
	BasinFlatten   float64 `yaml:"basin_flatten"`
	SandLevel      int     `yaml:"sand_level"`

	SmoothPasses   int `yaml:"smooth_passes"`
	SmoothMaxDelta int `yaml:"smooth_max_delta"`

	DirtMin       int     `yaml:"dirt_min"`
	DirtMax       int     `yaml:"dirt_max"`
	DirtFrequency float64 `yaml:"dirt_frequency"`

	TreeDensity   float64 `yaml:"tree_density"`
	TreeSpacing   int     `yaml:"tree_spacing"`
	MaxTreeHeight int     `yaml:"max_tree_height"`
}

// Query tunes ray and collision marching
type Query struct {
	RayStep          float32 `yaml:"ray_step"`
	RayMaxDistance   float32 `yaml:"ray_max_distance"`
	CollisionStep    float32 `yaml:"collision_step"`
	CollisionEpsilon float32 `yaml:"collision_epsilon"`
}

// Default returns the settings used when no config file is given
func Default() World {
	return World{
		Width:  64,
		Height: 24,
		Depth:  64,
		Generation: Generation{
			HeightFrequency: 0.04,
			BasinFrequency:  0.01,
			BasinThreshold:  0.35,
			BasinFlatten:    0.4,
			SandLevel:       3,
			SmoothPasses:    2,
			SmoothMaxDelta:  2,
			DirtMin:         2,
			DirtMax:         4,
			DirtFrequency:   0.1,
			TreeDensity:     0.001,
			TreeSpacing:     5,
			MaxTreeHeight:   7,
		},
		Query: Query{
			RayStep:          0.1,
			RayMaxDistance:   7.0,
			CollisionStep:    0.3,
			CollisionEpsilon: 0.0001,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result
func Load(path string) (World, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Volume is the number of voxels in the world
func (c World) Volume() int {
	return c.Width * c.Height * c.Depth
}

// Slots is the number of block payloads the vertex buffer is sized for
func (c World) Slots() int {
	if c.SlotCapacity > 0 {
		return c.SlotCapacity
	}
	return c.Volume()
}

func (c World) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0 || c.Depth <= 0:
		return fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalid, c.Width, c.Height, c.Depth)
	case c.SlotCapacity < 0:
		return fmt.Errorf("%w: slot_capacity %d", ErrInvalid, c.SlotCapacity)
	}
	if err := c.Generation.validate(); err != nil {
		return err
	}
	return c.Query.validate()
}

func (g Generation) validate() error {
	switch {
	case g.HeightFrequency <= 0 || g.BasinFrequency <= 0 || g.DirtFrequency <= 0:
		return fmt.Errorf("%w: noise frequencies must be positive", ErrInvalid)
	case g.BasinFlatten < 0 || g.BasinFlatten > 1:
		return fmt.Errorf("%w: basin_flatten %v not in [0,1]", ErrInvalid, g.BasinFlatten)
	case g.SmoothPasses < 0 || g.SmoothMaxDelta < 0:
		return fmt.Errorf("%w: smoothing settings must not be negative", ErrInvalid)
	case g.DirtMin < 0 || g.DirtMax < g.DirtMin:
		return fmt.Errorf("%w: dirt band %d..%d", ErrInvalid, g.DirtMin, g.DirtMax)
	case g.TreeDensity < 0 || g.TreeDensity > 1:
		return fmt.Errorf("%w: tree_density %v not in [0,1]", ErrInvalid, g.TreeDensity)
	case g.TreeSpacing < 0:
		return fmt.Errorf("%w: tree_spacing %d", ErrInvalid, g.TreeSpacing)
	case g.MaxTreeHeight < 7:
		return fmt.Errorf("%w: max_tree_height %d is below the tallest tree (7)", ErrInvalid, g.MaxTreeHeight)
	}
	return nil
}

func (q Query) validate() error {
	switch {
	case q.RayStep <= 0 || q.CollisionStep <= 0:
		return fmt.Errorf("%w: march steps must be positive", ErrInvalid)
	case q.RayMaxDistance < 0 || q.CollisionEpsilon < 0:
		return fmt.Errorf("%w: ray_max_distance and collision_epsilon must not be negative", ErrInvalid)
	}
	return nil
}
