package terrain

import "voxelterra/internal/world"

const (
	cactusHeight = 3
	trunkHeight  = 6
	treeMargin   = 3
)

func growCactus(c *world.Chunk, x, h, z int) {
	for i := 1; i <= cactusHeight; i++ {
		c.TrySetBlock(x, h+i, z, world.BlockCactus)
	}
}

// treeFits keeps the 5x5 canopy inside the chunk.
func treeFits(xl, zl int) bool {
	return xl >= treeMargin && zl >= treeMargin &&
		xl < world.ChunkSizeX-2 && zl < world.ChunkSizeZ-2
}

// growTree plants a six block trunk with a 5x5 canopy layer, a 3x3 layer
// above it and a single leaf on top.
func growTree(c *world.Chunk, x, h, z int) {
	leafSquare(c, x, h+5, z, 2)
	leafSquare(c, x, h+6, z, 1)
	for i := 1; i <= trunkHeight; i++ {
		c.TrySetBlock(x, h+i, z, world.BlockWood)
	}
	c.TrySetBlock(x, h+trunkHeight+1, z, world.BlockLeaves)
}

func leafSquare(c *world.Chunk, x, y, z, r int) {
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			c.TrySetBlock(x+dx, y, z+dz, world.BlockLeaves)
		}
	}
}

func stackBoulder(c *world.Chunk, x, h, z, height int) {
	for i := 1; i <= height; i++ {
		c.TrySetBlock(x, h+i, z, world.BlockCobble)
	}
}
