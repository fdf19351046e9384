package meshing

import (
	"voxel-world/internal/block"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout: pos.xyz, uv, material layer
const (
	FloatsPerVertex  = 6
	VerticesPerFace  = 6
	FacesPerBlock    = 6
	VerticesPerBlock = VerticesPerFace * FacesPerBlock
	FloatsPerBlock   = VerticesPerBlock * FloatsPerVertex
	BytesPerBlock    = FloatsPerBlock * 4
)

type faceGroup int

const (
	groupSide faceGroup = iota
	groupTop
	groupBottom
)

type faceDef struct {
	group   faceGroup
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
	uvs     [4]mgl32.Vec2
}

// Corners are counter-clockwise seen from outside the cube; each quad is
// emitted as (0,1,2) (2,3,0).
var cubeFaces = [FacesPerBlock]faceDef{
	{ // front, z
		group:   groupSide,
		normal:  mgl32.Vec3{0, 0, -1},
		corners: [4]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
		uvs:     [4]mgl32.Vec2{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	},
	{ // back, z+1
		group:   groupSide,
		normal:  mgl32.Vec3{0, 0, 1},
		corners: [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // left, x
		group:   groupSide,
		normal:  mgl32.Vec3{-1, 0, 0},
		corners: [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // right, x+1
		group:   groupSide,
		normal:  mgl32.Vec3{1, 0, 0},
		corners: [4]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
		uvs:     [4]mgl32.Vec2{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	},
	{ // top, y+1
		group:   groupTop,
		normal:  mgl32.Vec3{0, 1, 0},
		corners: [4]mgl32.Vec3{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
	},
	{ // bottom, y
		group:   groupBottom,
		normal:  mgl32.Vec3{0, -1, 0},
		corners: [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
}

var quadOrder = [VerticesPerFace]int{0, 1, 2, 2, 3, 0}

// EmitBlock appends the vertex payload of a unit cube at (x,y,z) to dst.
// Exactly FloatsPerBlock floats are appended for every type; air yields zeros
// so slot offsets stay fixed.
func EmitBlock(dst []float32, x, y, z int, t block.Type) []float32 {
	if t == block.Air {
		return append(dst, zeroPayload[:]...)
	}

	layers := block.Layers(t)
	origin := mgl32.Vec3{float32(x), float32(y), float32(z)}
	for i := range cubeFaces {
		f := &cubeFaces[i]
		layer := float32(layerFor(layers, f.group))
		for _, c := range quadOrder {
			p := origin.Add(f.corners[c])
			uv := f.uvs[c]
			dst = append(dst, p.X(), p.Y(), p.Z(), uv.X(), uv.Y(), layer)
		}
	}
	return dst
}

// Payload returns a freshly allocated payload for one block
func Payload(x, y, z int, t block.Type) []float32 {
	return EmitBlock(make([]float32, 0, FloatsPerBlock), x, y, z, t)
}

// FaceNormal returns the outward normal of face i in emission order
func FaceNormal(i int) mgl32.Vec3 {
	return cubeFaces[i].normal
}

func layerFor(l block.Faces, g faceGroup) block.Layer {
	switch g {
	case groupTop:
		return l.Top
	case groupBottom:
		return l.Bottom
	default:
		return l.Side
	}
}

var zeroPayload [FloatsPerBlock]float32
