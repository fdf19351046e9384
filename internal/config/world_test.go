package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.Volume(), cfg.Slots())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	data := []byte("width: 32\nslot_capacity: 1000\ngeneration:\n  tree_spacing: 3\nquery:\n  ray_max_distance: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, Default().Height, cfg.Height, "unset keys keep their defaults")
	assert.Equal(t, 1000, cfg.Slots())
	assert.Equal(t, 3, cfg.Generation.TreeSpacing)
	assert.Equal(t, Default().Generation.TreeDensity, cfg.Generation.TreeDensity)
	assert.Equal(t, float32(5), cfg.Query.RayMaxDistance)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 0\n"), 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*World){
		"negative capacity": func(c *World) { c.SlotCapacity = -1 },
		"zero ray step":     func(c *World) { c.Query.RayStep = 0 },
		"dirt band":         func(c *World) { c.Generation.DirtMin, c.Generation.DirtMax = 4, 2 },
		"tree density":      func(c *World) { c.Generation.TreeDensity = 1.5 },
		"tree headroom":     func(c *World) { c.Generation.MaxTreeHeight = 3 },
		"flatten":           func(c *World) { c.Generation.BasinFlatten = 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))
		})
	}
}

func TestRenderSettingsClamp(t *testing.T) {
	defer SetFOV(GetFOV())
	defer SetViewDistance(GetViewDistance())

	SetFOV(5)
	assert.Equal(t, float32(30), GetFOV())
	SetViewDistance(1e6)
	assert.Equal(t, float32(2000), GetViewDistance())
}

func TestFPSLimit(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(144)
	assert.Equal(t, 144, GetFPSLimit())
}
