package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelterra/internal/profiling"
	"voxelterra/internal/world"
)

// cactusInset pulls cactus side faces in by one texel.
const cactusInset = 1.0 / 16

// ChunkMesh is a finished mesh detached from its chunk. The coordinating
// goroutine commits it with Chunk.Upload.
type ChunkMesh struct {
	Key         world.Key
	Opaque      world.MeshBuffer
	Transparent world.MeshBuffer
}

// Faces returns the total quad count of both groups.
func (m ChunkMesh) Faces() int {
	return m.Opaque.Faces() + m.Transparent.Faces()
}

// faceGeometry describes one cube face as an origin offset from the block
// corner plus two edge vectors. inset marks the axis a cactus face moves
// along; the sign says which way.
type faceGeometry struct {
	origin mgl32.Vec3
	v1, v2 mgl32.Vec3
	normal mgl32.Vec3
	inset  mgl32.Vec3
}

var (
	unitX = mgl32.Vec3{1, 0, 0}
	unitY = mgl32.Vec3{0, 1, 0}
	unitZ = mgl32.Vec3{0, 0, 1}
)

var faces = [6]faceGeometry{
	world.XPos: {origin: unitX, v1: unitY, v2: unitZ, normal: unitX, inset: unitX.Mul(-1)},
	world.XNeg: {origin: mgl32.Vec3{}, v1: unitY, v2: unitZ, normal: unitX.Mul(-1), inset: unitX},
	world.YPos: {origin: unitY, v1: unitZ, v2: unitX, normal: unitY},
	world.YNeg: {origin: mgl32.Vec3{}, v1: unitZ, v2: unitX, normal: unitY.Mul(-1)},
	world.ZPos: {origin: unitZ, v1: unitY, v2: unitX, normal: unitZ, inset: unitZ.Mul(-1)},
	world.ZNeg: {origin: mgl32.Vec3{}, v1: unitY, v2: unitX, normal: unitZ.Mul(-1), inset: unitZ},
}

// FaceVisible reports whether block's face toward neighbor is drawn: always
// against empty space, and against water or ice unless block is itself water
// or ice. Top faces also show under a cactus.
func FaceVisible(block, neighbor world.BlockType, dir world.Direction) bool {
	switch {
	case neighbor == world.BlockEmpty:
		return true
	case neighbor.IsLiquidLike() && !block.IsLiquidLike():
		return true
	case dir == world.YPos && neighbor == world.BlockCactus:
		return true
	}
	return false
}

// neighborhood resolves block lookups one step outside a chunk. Neighbor
// chunks that are missing or still being painted read as empty.
type neighborhood struct {
	c     *world.Chunk
	sides [6]*world.Chunk
}

func newNeighborhood(idx *world.Index, c *world.Chunk) neighborhood {
	n := neighborhood{c: c}
	for _, dir := range []world.Direction{world.XPos, world.XNeg, world.ZPos, world.ZNeg} {
		if nb := idx.Neighbor(c, dir); nb != nil && nb.Filled() {
			n.sides[dir] = nb
		}
	}
	return n
}

func (n *neighborhood) at(x, y, z int, dir world.Direction) world.BlockType {
	dx, dy, dz := dir.Offset()
	x, y, z = x+dx, y+dy, z+dz
	if y < 0 || y >= world.ChunkSizeY {
		return world.BlockEmpty
	}
	src := n.c
	switch {
	case x < 0:
		src, x = n.sides[world.XNeg], world.ChunkSizeX-1
	case x >= world.ChunkSizeX:
		src, x = n.sides[world.XPos], 0
	case z < 0:
		src, z = n.sides[world.ZNeg], world.ChunkSizeZ-1
	case z >= world.ChunkSizeZ:
		src, z = n.sides[world.ZPos], 0
	}
	if src == nil {
		return world.BlockEmpty
	}
	return src.Block(x, y, z)
}

// Build produces the opaque and transparent meshes of c. Faces shared with
// neighbor chunks are culled against the neighbor's blocks. c is only read.
func Build(idx *world.Index, c *world.Chunk) ChunkMesh {
	defer profiling.Track("meshing.Build")()
	m := ChunkMesh{Key: c.Key()}
	nb := newNeighborhood(idx, c)

	for z := 0; z < world.ChunkSizeZ; z++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				t := c.Block(x, y, z)
				if t == world.BlockEmpty {
					continue
				}
				buf := &m.Opaque
				if t.IsTransparent() {
					buf = &m.Transparent
				}
				pos := mgl32.Vec3{float32(x), float32(y), float32(z)}
				for _, dir := range world.Directions {
					if FaceVisible(t, nb.at(x, y, z, dir), dir) {
						appendFace(buf, pos, t, dir)
					}
				}
			}
		}
	}
	return m
}

// appendFace emits four vertices and two triangles for one face.
func appendFace(buf *world.MeshBuffer, block mgl32.Vec3, t world.BlockType, dir world.Direction) {
	g := faces[dir]
	origin := block.Add(g.origin)
	if t == world.BlockCactus {
		origin = origin.Add(g.inset.Mul(cactusInset))
	}
	uv := TileFor(t).uvFor(dir)
	color := ColorOf(t)
	i := uint32(len(buf.Vertices))

	corners := [4]mgl32.Vec3{origin, origin.Add(g.v1), origin.Add(g.v1).Add(g.v2), origin.Add(g.v2)}
	offsets := [4]mgl32.Vec4{{}, {0, TileSize, 0, 0}, {TileSize, TileSize, 0, 0}, {TileSize, 0, 0, 0}}
	for k := range corners {
		buf.Vertices = append(buf.Vertices, world.Vertex{
			Pos:    corners[k],
			Normal: g.normal,
			UV:     uv.Add(offsets[k]),
			Color:  color,
		})
	}
	buf.Indices = append(buf.Indices, i, i+1, i+3, i+2, i+3, i+1)
}
