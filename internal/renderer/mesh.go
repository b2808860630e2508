package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// vertexStride is the interleaved layout size in floats: position (3),
// texture coordinate (2), normal (3).
const vertexStride = 8

// Mesh is a primitive mesh uploaded once and drawn any number of times.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	uploaded   bool
}

// Upload pushes interleaved vertex data and triangle indices to the GPU.
// Calling Upload on an already uploaded mesh is a no-op.
func (m *Mesh) Upload(vertices []float32, indices []uint32) {
	if m.uploaded {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	m.indexCount = int32(len(indices))
	m.uploaded = true
}

// Draw issues an indexed draw call. A mesh that was never uploaded draws
// nothing.
func (m *Mesh) Draw() {
	if !m.uploaded {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *Mesh) Uploaded() bool {
	return m.uploaded
}

// Cleanup releases the GPU buffers.
func (m *Mesh) Cleanup() {
	if !m.uploaded {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.uploaded = false
	m.indexCount = 0
}
