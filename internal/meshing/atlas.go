package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelterra/internal/world"
)

// TileSize is the edge of one atlas cell in UV units (16x16 atlas).
const TileSize = 1.0 / 16

// Tile holds the atlas cells of a block's side, top and bottom faces. Each
// UV is (u, v, animated, transparent); the last two are 0 or 1 flags the
// shader reads per vertex.
type Tile struct {
	Side, Top, Bottom mgl32.Vec4
}

func cell(u, v float32) mgl32.Vec4 {
	return mgl32.Vec4{u * TileSize, v * TileSize, 0, 0}
}

func uniform(uv mgl32.Vec4) Tile {
	return Tile{Side: uv, Top: uv, Bottom: uv}
}

var (
	animated    = mgl32.Vec4{0, 0, 1, 0}
	transparent = mgl32.Vec4{0, 0, 0, 1}
)

var atlas = [world.NumBlockTypes]Tile{
	world.BlockGrass:     {Side: cell(3, 15), Top: cell(8, 13), Bottom: cell(2, 15)},
	world.BlockDirt:      uniform(cell(2, 15)),
	world.BlockStone:     uniform(cell(1, 15)),
	world.BlockWater:     uniform(cell(13, 3).Add(animated).Add(transparent)),
	world.BlockLava:      uniform(cell(13, 1).Add(animated)),
	world.BlockSnow:      uniform(cell(2, 11)),
	world.BlockIce:       uniform(cell(3, 11).Add(transparent)),
	world.BlockCobble:    uniform(cell(0, 14)),
	world.BlockSandstone: {Side: cell(0, 3), Top: cell(0, 4), Bottom: cell(0, 2)},
	world.BlockSand:      uniform(cell(2, 14)),
	world.BlockObsidian:  uniform(cell(7, 4)),
	world.BlockBedrock:   uniform(cell(1, 14)),
	world.BlockCactus:    {Side: cell(6, 11).Add(transparent), Top: cell(5, 11).Add(transparent), Bottom: cell(5, 11).Add(transparent)},
	world.BlockSnowGrass: {Side: cell(4, 11), Top: cell(2, 11), Bottom: cell(2, 15)},
	world.BlockWood:      {Side: cell(4, 13), Top: cell(5, 13), Bottom: cell(5, 13)},
	world.BlockLeaves:    uniform(cell(5, 12)),
	world.BlockMud:       {Side: cell(13, 11), Top: cell(14, 11), Bottom: cell(2, 15)},
}

// TileFor returns the atlas cells of t. EMPTY has the zero tile.
func TileFor(t world.BlockType) Tile {
	if int(t) >= len(atlas) {
		return Tile{}
	}
	return atlas[t]
}

// uvFor picks the tile face matching a face direction.
func (t Tile) uvFor(dir world.Direction) mgl32.Vec4 {
	switch dir {
	case world.YPos:
		return t.Top
	case world.YNeg:
		return t.Bottom
	}
	return t.Side
}

// palette is the flat color of each block, used as the vertex color tag and
// by top-down previews.
var palette = [world.NumBlockTypes]mgl32.Vec4{
	world.BlockGrass:     {0.36, 0.62, 0.24, 1},
	world.BlockSnowGrass: {0.85, 0.90, 0.88, 1},
	world.BlockDirt:      {0.47, 0.33, 0.21, 1},
	world.BlockStone:     {0.50, 0.50, 0.50, 1},
	world.BlockWater:     {0.20, 0.35, 0.80, 0.6},
	world.BlockSnow:      {0.96, 0.97, 1.00, 1},
	world.BlockLava:      {0.95, 0.40, 0.05, 1},
	world.BlockBedrock:   {0.15, 0.15, 0.15, 1},
	world.BlockIce:       {0.65, 0.82, 0.95, 0.8},
	world.BlockSand:      {0.89, 0.83, 0.60, 1},
	world.BlockSandstone: {0.82, 0.72, 0.50, 1},
	world.BlockObsidian:  {0.12, 0.06, 0.20, 1},
	world.BlockCactus:    {0.25, 0.55, 0.20, 1},
	world.BlockCobble:    {0.42, 0.42, 0.42, 1},
	world.BlockWood:      {0.40, 0.30, 0.18, 1},
	world.BlockLeaves:    {0.20, 0.45, 0.15, 1},
	world.BlockMud:       {0.35, 0.25, 0.15, 1},
}

// ColorOf returns the flat color of t. EMPTY is fully transparent.
func ColorOf(t world.BlockType) mgl32.Vec4 {
	if int(t) >= len(palette) {
		return mgl32.Vec4{}
	}
	return palette[t]
}
