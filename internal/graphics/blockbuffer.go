package graphics

import (
	"voxel-world/internal/meshing"
	"voxel-world/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BlockBuffer is the GPU copy of the world's slot buffer. It is allocated
// once at full capacity; only dirty ranges are re-uploaded.
type BlockBuffer struct {
	vao           uint32
	vbo           uint32
	capacityBytes int
}

func NewBlockBuffer(capacityBytes int) *BlockBuffer {
	b := &BlockBuffer{capacityBytes: capacityBytes}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacityBytes, nil, gl.DYNAMIC_DRAW)

	stride := int32(meshing.FloatsPerVertex * 4)
	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// uv
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	// material layer
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 5*4)

	gl.BindVertexArray(0)
	return b
}

// Upload copies data into the VBO at offsetBytes and returns the number of
// bytes sent. Ranges past the end of the VBO are dropped.
func (b *BlockBuffer) Upload(offsetBytes int, data []float32) int {
	size := len(data) * 4
	if size == 0 || offsetBytes < 0 || offsetBytes+size > b.capacityBytes {
		return 0
	}
	defer profiling.Track("graphics.BlockBuffer.Upload")()

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, offsetBytes, size, gl.Ptr(data))
	return size
}

// Draw issues one draw call over the first vertexCount vertices
func (b *BlockBuffer) Draw(vertexCount int) {
	if vertexCount <= 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(vertexCount))
}

func (b *BlockBuffer) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}
