package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirIsZeroValue(t *testing.T) {
	var zero Type
	assert.Equal(t, Air, zero)
	assert.False(t, Solid(zero))
}

func TestTransparency(t *testing.T) {
	transparent := map[Type]bool{Air: true, Leaves: true, Glass: true}
	for i := 0; i < Count; i++ {
		bt := Type(i)
		assert.Equal(t, transparent[bt], Transparent(bt), "transparency of %s", bt)
	}
	assert.False(t, Transparent(Type(999)), "unknown types are opaque")
}

func TestLayers(t *testing.T) {
	g := Layers(Grass)
	assert.NotEqual(t, g.Top, g.Side)
	assert.NotEqual(t, g.Side, g.Bottom)

	s := Layers(Stone)
	assert.Equal(t, s.Top, s.Side)
	assert.Equal(t, s.Side, s.Bottom)

	assert.Equal(t, Faces{}, Layers(Air))
	for _, bt := range Placeable() {
		assert.NotEqual(t, LayerNone, Layers(bt).Side, "%s has no side layer", bt)
	}
}

func TestParse(t *testing.T) {
	for i := 0; i < Count; i++ {
		bt := Type(i)
		got, err := Parse(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}

	got, err := Parse("  Bricks ")
	require.NoError(t, err)
	assert.Equal(t, Bricks, got)

	_, err = Parse("obsidian")
	assert.Error(t, err)
}
