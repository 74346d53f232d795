package world

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one corner of a mesh face, in chunk-local space.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	// UV holds the atlas cell origin in XY; Z is 1 for animated textures and
	// W is 1 for see-through textures.
	UV    mgl32.Vec4
	Color mgl32.Vec4
}

// MeshBuffer is an indexed triangle list.
type MeshBuffer struct {
	Vertices []Vertex
	Indices  []uint32
}

// Faces returns the number of quads in the buffer.
func (m *MeshBuffer) Faces() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 6
}

// Empty reports whether the buffer holds no geometry.
func (m *MeshBuffer) Empty() bool {
	return m == nil || len(m.Indices) == 0
}

// Pass selects which buffer group a draw call uses.
type Pass uint8

const (
	PassOpaque Pass = iota
	PassTransparent
)

// Drawer is implemented by the rendering layer. Origin is the world-space
// translation of the chunk.
type Drawer interface {
	DrawChunk(origin mgl32.Vec3, buf *MeshBuffer, pass Pass)
}
