package block

import (
	"fmt"
	"strings"
)

// Type identifies the kind of block stored in a voxel
type Type uint16

const (
	Air Type = iota
	Grass
	Log
	Leaves
	Dirt
	Stone
	Sand
	Glass
	Planks
	Bricks

	numTypes
)

// Count is the number of known block types, air included
const Count = int(numTypes)

// Valid reports whether t is a known block type
func Valid(t Type) bool {
	return t < numTypes
}

// Solid reports whether t occupies its voxel (anything but air)
func Solid(t Type) bool {
	return t != Air
}

// Transparent reports whether faces next to a block of type t are open.
// Unknown types are treated as opaque.
func Transparent(t Type) bool {
	if !Valid(t) {
		return false
	}
	return catalog[t].transparent
}

// Layers returns the material layers used for the top, side and bottom faces
func Layers(t Type) Faces {
	if !Valid(t) {
		return Faces{}
	}
	return catalog[t].faces
}

// Color returns the display color of t, used by previews
func Color(t Type) [3]uint8 {
	if !Valid(t) {
		return [3]uint8{255, 0, 255}
	}
	return catalog[t].color
}

func (t Type) String() string {
	if !Valid(t) {
		return fmt.Sprintf("block(%d)", uint16(t))
	}
	return catalog[t].name
}

// Parse looks up a block type by name (case-insensitive)
func Parse(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range catalog {
		if catalog[i].name == n {
			return Type(i), nil
		}
	}
	return Air, fmt.Errorf("unknown block type %q", name)
}

// Placeable returns every non-air block type in catalog order
func Placeable() []Type {
	out := make([]Type, 0, Count-1)
	for t := Grass; t < numTypes; t++ {
		out = append(out, t)
	}
	return out
}
