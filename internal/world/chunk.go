package world

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Chunk is a dense 16x256x16 voxel column. X and Z hold the world-space
// corner of the chunk (multiples of 16).
//
// Block data is written by exactly one painter before Filled reports true
// and is retained for the chunk's lifetime. Mesh buffers come and go as the
// chunk enters and leaves view.
type Chunk struct {
	X, Z int

	blocks [ChunkVolume]BlockType

	linkMu    sync.RWMutex
	neighbors [6]Key
	linked    [6]bool

	filled atomic.Bool
	meshed atomic.Bool

	opaque      *MeshBuffer
	transparent *MeshBuffer
}

// NewChunk creates an all-empty chunk whose corner is (x, z).
func NewChunk(x, z int) *Chunk {
	return &Chunk{X: x, Z: z}
}

// Key returns the index key of this chunk.
func (c *Chunk) Key() Key {
	return PackInt(c.X, c.Z)
}

// InBounds reports whether (x, y, z) is a valid local cell.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

func cellIndex(x, y, z int) int {
	return x + ChunkSizeX*y + ChunkSizeX*ChunkSizeY*z
}

// Block returns the block at local coordinates. An out-of-range index is a
// programming error and panics.
func (c *Chunk) Block(x, y, z int) BlockType {
	if !InBounds(x, y, z) {
		panic(fmt.Errorf("chunk (%d,%d) get (%d,%d,%d): %w", c.X, c.Z, x, y, z, ErrOutOfBounds))
	}
	return c.blocks[cellIndex(x, y, z)]
}

// SetBlock stores t at local coordinates, panicking on an out-of-range index.
func (c *Chunk) SetBlock(x, y, z int, t BlockType) {
	if !InBounds(x, y, z) {
		panic(fmt.Errorf("chunk (%d,%d) set (%d,%d,%d): %w", c.X, c.Z, x, y, z, ErrOutOfBounds))
	}
	c.blocks[cellIndex(x, y, z)] = t
}

// TrySetBlock stores t when (x, y, z) is inside the chunk and reports
// whether it did. Structure stamping uses it to clip at chunk edges.
func (c *Chunk) TrySetBlock(x, y, z int, t BlockType) bool {
	if !InBounds(x, y, z) {
		return false
	}
	c.blocks[cellIndex(x, y, z)] = t
	return true
}

// FillColumn sets cells [from, to) of column (x, z) to t. The range is
// clipped to the chunk height.
func (c *Chunk) FillColumn(x, z, from, to int, t BlockType) {
	if from < 0 {
		from = 0
	}
	if to > ChunkSizeY {
		to = ChunkSizeY
	}
	for y := from; y < to; y++ {
		c.SetBlock(x, y, z, t)
	}
}

// Count returns how many cells hold t.
func (c *Chunk) Count(t BlockType) int {
	n := 0
	for _, b := range c.blocks {
		if b == t {
			n++
		}
	}
	return n
}

func (c *Chunk) link(dir Direction, k Key) {
	c.linkMu.Lock()
	c.neighbors[dir] = k
	c.linked[dir] = true
	c.linkMu.Unlock()
}

// NeighborKey returns the key of the chunk linked in direction dir.
func (c *Chunk) NeighborKey(dir Direction) (Key, bool) {
	c.linkMu.RLock()
	defer c.linkMu.RUnlock()
	return c.neighbors[dir], c.linked[dir]
}

// Filled reports whether a painter has finished writing block data.
func (c *Chunk) Filled() bool {
	return c.filled.Load()
}

// MarkFilled publishes the block data. Readers that observe Filled() == true
// see every write made before the call.
func (c *Chunk) MarkFilled() {
	c.filled.Store(true)
}

// Meshed reports whether mesh buffers are attached.
func (c *Chunk) Meshed() bool {
	return c.meshed.Load()
}

// Ready reports whether both the opaque and transparent buffers are built.
func (c *Chunk) Ready() bool {
	return c.meshed.Load() && c.opaque != nil && c.transparent != nil
}

// Upload attaches freshly built buffers and marks the chunk meshed.
// Only the coordinating goroutine calls it.
func (c *Chunk) Upload(opaque, transparent MeshBuffer) {
	c.opaque = &opaque
	c.transparent = &transparent
	c.meshed.Store(true)
}

// Opaque returns the committed opaque buffer, or nil.
func (c *Chunk) Opaque() *MeshBuffer {
	return c.opaque
}

// Transparent returns the committed transparent buffer, or nil.
func (c *Chunk) Transparent() *MeshBuffer {
	return c.transparent
}

// Destroy releases the mesh buffers and clears the meshed flag. Block data
// is kept so the chunk can be meshed again later.
func (c *Chunk) Destroy() {
	c.meshed.Store(false)
	c.opaque = nil
	c.transparent = nil
}
