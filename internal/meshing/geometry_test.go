package meshing

import (
	"testing"

	"voxel-world/internal/block"

	"github.com/go-gl/mathgl/mgl32"
)

func vertexAt(p []float32, v int) (pos mgl32.Vec3, uv mgl32.Vec2, layer float32) {
	o := v * FloatsPerVertex
	return mgl32.Vec3{p[o], p[o+1], p[o+2]}, mgl32.Vec2{p[o+3], p[o+4]}, p[o+5]
}

func TestPayloadSizeIsFixed(t *testing.T) {
	for i := 0; i < block.Count; i++ {
		p := Payload(3, 4, 5, block.Type(i))
		if len(p) != FloatsPerBlock {
			t.Fatalf("%s: got %d floats, want %d", block.Type(i), len(p), FloatsPerBlock)
		}
	}
}

func TestAirPayloadIsZero(t *testing.T) {
	for i, f := range Payload(7, 7, 7, block.Air) {
		if f != 0 {
			t.Fatalf("air payload float %d = %v, want 0", i, f)
		}
	}
}

func TestEmitAppends(t *testing.T) {
	dst := []float32{42}
	dst = EmitBlock(dst, 0, 0, 0, block.Stone)
	if len(dst) != 1+FloatsPerBlock || dst[0] != 42 {
		t.Fatalf("EmitBlock did not append: len=%d first=%v", len(dst), dst[0])
	}
}

func TestVerticesInsideUnitCube(t *testing.T) {
	p := Payload(2, 3, 4, block.Dirt)
	for v := 0; v < VerticesPerBlock; v++ {
		pos, uv, _ := vertexAt(p, v)
		if pos.X() < 2 || pos.X() > 3 || pos.Y() < 3 || pos.Y() > 4 || pos.Z() < 4 || pos.Z() > 5 {
			t.Fatalf("vertex %d at %v outside cube at (2,3,4)", v, pos)
		}
		if uv.X() < 0 || uv.X() > 1 || uv.Y() < 0 || uv.Y() > 1 {
			t.Fatalf("vertex %d uv %v outside [0,1]", v, uv)
		}
	}
}

func TestTrianglesFaceOutward(t *testing.T) {
	p := Payload(0, 0, 0, block.Stone)
	for f := 0; f < FacesPerBlock; f++ {
		for tri := 0; tri < 2; tri++ {
			base := f*VerticesPerFace + tri*3
			a, _, _ := vertexAt(p, base)
			b, _, _ := vertexAt(p, base+1)
			c, _, _ := vertexAt(p, base+2)
			n := b.Sub(a).Cross(c.Sub(a)).Normalize()
			if !n.ApproxEqual(FaceNormal(f)) {
				t.Errorf("face %d triangle %d normal %v, want %v", f, tri, n, FaceNormal(f))
			}
		}
	}
}

func TestLayersPerFace(t *testing.T) {
	p := Payload(0, 0, 0, block.Grass)
	want := block.Layers(block.Grass)
	for f := 0; f < FacesPerBlock; f++ {
		_, _, layer := vertexAt(p, f*VerticesPerFace)
		n := FaceNormal(f)
		expected := want.Side
		switch {
		case n.Y() > 0:
			expected = want.Top
		case n.Y() < 0:
			expected = want.Bottom
		}
		if layer != float32(expected) {
			t.Errorf("face %d layer %v, want %v", f, layer, expected)
		}
	}
}

func BenchmarkEmitBlock(b *testing.B) {
	dst := make([]float32, 0, FloatsPerBlock)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = EmitBlock(dst[:0], i%64, 10, i%32, block.Grass)
	}
}
