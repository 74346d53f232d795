package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNoChunk is returned when a query addresses a column with no chunk.
	ErrNoChunk = errors.New("no chunk at coordinates")
	// ErrOutOfBounds is returned (or panicked with) for coordinates outside
	// the vertical range or a chunk's local extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// Index owns every chunk in the world, keyed by the packed coordinates of
// the chunk corner. Chunks are added only by the coordinating goroutine;
// worker goroutines may read concurrently.
type Index struct {
	mu     sync.RWMutex
	chunks map[Key]*Chunk
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{chunks: make(map[Key]*Chunk)}
}

// ChunkExists reports whether a chunk covers the column containing (x, z).
func (ix *Index) ChunkExists(x, z int) bool {
	ix.mu.RLock()
	_, ok := ix.chunks[ChunkKey(x, z)]
	ix.mu.RUnlock()
	return ok
}

// ChunkAt returns the chunk covering (x, z).
func (ix *Index) ChunkAt(x, z int) (*Chunk, error) {
	ix.mu.RLock()
	c, ok := ix.chunks[ChunkKey(x, z)]
	ix.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("chunk at (%d,%d): %w", x, z, ErrNoChunk)
	}
	return c, nil
}

// MustChunkAt is ChunkAt for callers that created the chunk themselves.
func (ix *Index) MustChunkAt(x, z int) *Chunk {
	c, err := ix.ChunkAt(x, z)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the chunk stored under k, or nil.
func (ix *Index) Lookup(k Key) *Chunk {
	ix.mu.RLock()
	c := ix.chunks[k]
	ix.mu.RUnlock()
	return c
}

// InstantiateChunk creates an empty chunk at the corner containing (x, z),
// replacing any chunk already stored there, and links it with its four
// cardinal neighbours in both directions.
func (ix *Index) InstantiateChunk(x, z int) *Chunk {
	cx, cz := ChunkCorner(x, z)
	c := NewChunk(cx, cz)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.chunks[c.Key()] = c
	for _, d := range [4]Direction{ZPos, ZNeg, XPos, XNeg} {
		dx, _, dz := d.Offset()
		nk := PackInt(cx+dx*ChunkSizeX, cz+dz*ChunkSizeZ)
		if n, ok := ix.chunks[nk]; ok {
			c.link(d, nk)
			n.link(d.Opposite(), c.Key())
		}
	}
	return c
}

// Neighbor returns the chunk linked to c in direction dir, or nil.
func (ix *Index) Neighbor(c *Chunk, dir Direction) *Chunk {
	k, ok := c.NeighborKey(dir)
	if !ok {
		return nil
	}
	return ix.Lookup(k)
}

// BlockAt returns the block at world coordinates. Heights outside
// [0, ChunkSizeY) read as empty; a column with no chunk is an error.
func (ix *Index) BlockAt(x, y, z int) (BlockType, error) {
	c, err := ix.ChunkAt(x, z)
	if err != nil {
		return BlockEmpty, err
	}
	if y < 0 || y >= ChunkSizeY {
		return BlockEmpty, nil
	}
	return c.Block(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ)), nil
}

// BlockAtVec resolves a floating-point position to its containing block.
func (ix *Index) BlockAtVec(p mgl32.Vec3) (BlockType, error) {
	x, y, z := BlockCoords(p)
	return ix.BlockAt(x, y, z)
}

// BlockCoords floors a world-space position to integer block coordinates.
func BlockCoords(p mgl32.Vec3) (int, int, int) {
	return floorF(p[0]), floorF(p[1]), floorF(p[2])
}

func floorF(f float32) int {
	i := int(f)
	if float32(i) > f {
		i--
	}
	return i
}

// SetBlockAt writes t at world coordinates. It never creates chunks.
func (ix *Index) SetBlockAt(x, y, z int, t BlockType) error {
	c, err := ix.ChunkAt(x, z)
	if err != nil {
		return err
	}
	if y < 0 || y >= ChunkSizeY {
		return fmt.Errorf("set block (%d,%d,%d): %w", x, y, z, ErrOutOfBounds)
	}
	c.SetBlock(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ), t)
	return nil
}

// Len returns the number of stored chunks.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.chunks)
}

// Chunks returns a snapshot of all stored chunks in no particular order.
func (ix *Index) Chunks() []*Chunk {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]*Chunk, 0, len(ix.chunks))
	for _, c := range ix.chunks {
		out = append(out, c)
	}
	return out
}

// Draw hands every ready chunk whose corner lies in [minX, maxX] x
// [minZ, maxZ] to d, all opaque buffers first and then all transparent ones.
func (ix *Index) Draw(minX, maxX, minZ, maxZ int, d Drawer) int {
	sx, sz := ChunkCorner(minX, minZ)
	var ready []*Chunk
	for x := sx; x <= maxX; x += ChunkSizeX {
		for z := sz; z <= maxZ; z += ChunkSizeZ {
			c := ix.Lookup(PackInt(x, z))
			if c == nil || !c.Ready() {
				continue
			}
			ready = append(ready, c)
		}
	}
	for _, c := range ready {
		d.DrawChunk(mgl32.Vec3{float32(c.X), 0, float32(c.Z)}, c.Opaque(), PassOpaque)
	}
	for _, c := range ready {
		d.DrawChunk(mgl32.Vec3{float32(c.X), 0, float32(c.Z)}, c.Transparent(), PassTransparent)
	}
	return len(ready)
}
