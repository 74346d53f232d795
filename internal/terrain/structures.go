package terrain

import (
	"voxelterra/internal/noise"
	"voxelterra/internal/world"
)

// structureAnchor is the chunk-local column whose surface seeds a structure.
const structureAnchor = 8

// cell is a chunk-local (x, z) column offset.
type cell struct{ x, z int }

// rows expands a compact row table: each entry is a z value followed by the
// x values occupied on that row.
func rows(table ...[]int) []cell {
	var out []cell
	for _, r := range table {
		for _, x := range r[1:] {
			out = append(out, cell{x, r[0]})
		}
	}
	return out
}

var (
	iglooFloor = rows(
		[]int{7, 7, 8, 9},
		[]int{8, 7, 8, 9},
		[]int{9, 6, 7, 8, 9, 10},
		[]int{10, 5, 6, 7, 8, 9, 10, 11},
		[]int{11, 5, 6, 7, 8, 9, 10, 11},
		[]int{12, 5, 6, 7, 8, 9, 10, 11},
		[]int{13, 6, 7, 8, 9, 10},
		[]int{14, 7, 8, 9},
	)
	// iglooWall has a doorway gap on rows 7 and 8.
	iglooWall = rows(
		[]int{7, 7, 9},
		[]int{8, 7, 9},
		[]int{9, 6, 10},
		[]int{10, 5, 11},
		[]int{11, 5, 11},
		[]int{12, 5, 11},
		[]int{13, 6, 10},
		[]int{14, 7, 8, 9},
	)
	iglooShoulder = rows(
		[]int{7, 8},
		[]int{8, 8},
		[]int{9, 7, 8, 9},
		[]int{10, 6, 7, 8, 9, 10},
		[]int{11, 6, 7, 8, 9, 10},
		[]int{12, 6, 7, 8, 9, 10},
		[]int{13, 7, 8, 9},
	)
	iglooCap = rows(
		[]int{10, 7, 8, 9},
		[]int{11, 7, 8, 9},
		[]int{12, 7, 8, 9},
	)

	pillarFootprint = rows(
		[]int{8, 5, 6, 10, 11},
		[]int{9, 5, 6, 10, 11},
		[]int{12, 5, 6, 10, 11},
		[]int{13, 5, 6, 10, 11},
	)
	pillarRoof = rows(
		[]int{9, 6, 7, 8, 9, 10},
		[]int{10, 6, 10},
		[]int{11, 6, 10},
		[]int{12, 6, 7, 8, 9, 10},
	)
)

const (
	pyramidSpan  = 15
	pillarHeight = 4
)

// stampStructure places the landmark chosen by the biome at the chunk's
// anchor column. Writes outside the chunk are clipped.
func (p *Painter) stampStructure(c *world.Chunk) {
	s := noise.HeightAndBiome(c.X+structureAnchor, c.Z+structureAnchor)
	base := clampSurface(s.Height) + 1
	switch p.profiles[s.Biome].Structure {
	case StructurePyramid:
		stampPyramid(c, base)
	case StructureIgloo:
		stampIgloo(c, base)
	case StructurePillars:
		stampPillars(c, base)
	}
}

// stampPyramid builds a stepped sandstone pyramid over a 15x15 footprint.
func stampPyramid(c *world.Chunk, base int) {
	const last = pyramidSpan - 1
	for zl := 0; zl < pyramidSpan; zl++ {
		for xl := 0; xl < pyramidSpan; xl++ {
			layers := min(min(zl, xl), min(last-zl, last-xl)) + 1
			for y := 0; y < layers; y++ {
				c.TrySetBlock(xl, base+y, zl, world.BlockSandstone)
			}
		}
	}
}

func stampIgloo(c *world.Chunk, base int) {
	place(c, iglooFloor, base-1, world.BlockSnow)
	place(c, iglooWall, base, world.BlockSnow)
	place(c, iglooWall, base+1, world.BlockSnow)
	place(c, iglooShoulder, base+2, world.BlockSnow)
	place(c, iglooCap, base+3, world.BlockSnow)
}

// stampPillars raises four stone pillars under an obsidian ring.
func stampPillars(c *world.Chunk, base int) {
	for y := 0; y < pillarHeight; y++ {
		place(c, pillarFootprint, base+y, world.BlockStone)
	}
	place(c, pillarRoof, base+pillarHeight, world.BlockObsidian)
}

func place(c *world.Chunk, cells []cell, y int, t world.BlockType) {
	for _, p := range cells {
		c.TrySetBlock(p.x, y, p.z, t)
	}
}
