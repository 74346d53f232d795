package terrain

import (
	"testing"

	"voxelterra/internal/world"
)

// column returns the blocks of column (xl, zl) in [from, to].
func column(c *world.Chunk, xl, zl, from, to int) []world.BlockType {
	out := make([]world.BlockType, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, c.Block(xl, y, zl))
	}
	return out
}

func expectRun(t *testing.T, c *world.Chunk, xl, zl, from, to int, want world.BlockType) {
	t.Helper()
	for y, b := range column(c, xl, zl, from, to) {
		if b != want {
			t.Errorf("y=%d: got %v, want %v", from+y, b, want)
		}
	}
}

func TestLayColumnProfiles(t *testing.T) {
	p := NewPainter(nil, testSettings())
	const xl, zl = 1, 1

	t.Run("desert dry", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 150, world.BiomeDesert, true)
		expectRun(t, c, xl, zl, StoneTop, 150, world.BlockSand)
	})
	t.Run("grassland", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 142, world.BiomeGrassland, false)
		expectRun(t, c, xl, zl, StoneTop, 141, world.BlockDirt)
		expectRun(t, c, xl, zl, 142, 142, world.BlockGrass)
	})
	t.Run("spike cap high", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 150, world.BiomeDesertMountain, false)
		expectRun(t, c, xl, zl, StoneTop, spikeCapFrom-1, world.BlockSand)
		expectRun(t, c, xl, zl, spikeCapFrom, 150, world.BlockSandstone)
		expectRun(t, c, xl, zl, 151, 160, world.BlockEmpty)
	})
	t.Run("spike cap low", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 140, world.BiomeDesertMountain, false)
		expectRun(t, c, xl, zl, StoneTop, 140, world.BlockSand)
	})
	t.Run("tundra lake freezes", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 133, world.BiomeTundra, false)
		expectRun(t, c, xl, zl, StoneTop, 132, world.BlockDirt)
		expectRun(t, c, xl, zl, 133, WaterLevel-1, world.BlockWater)
		expectRun(t, c, xl, zl, WaterLevel, WaterLevel, world.BlockIce)
	})
	t.Run("swamp lake stays open", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 130, world.BiomeSwamp, false)
		expectRun(t, c, xl, zl, 130, WaterLevel, world.BlockWater)
		expectRun(t, c, xl, zl, WaterLevel+1, WaterLevel+3, world.BlockEmpty)
	})
	t.Run("island beach", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 139, world.BiomeIsland, false)
		expectRun(t, c, xl, zl, StoneTop, 139, world.BlockSand)
	})
	t.Run("island shallows", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 135, world.BiomeIsland, false)
		expectRun(t, c, xl, zl, StoneTop, 134, world.BlockSand)
		expectRun(t, c, xl, zl, 135, WaterLevel, world.BlockWater)
	})
	t.Run("volcano flooded", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 131, world.BiomeVolcano, false)
		expectRun(t, c, xl, zl, StoneTop, 130, world.BlockDirt)
		expectRun(t, c, xl, zl, 131, WaterLevel, world.BlockWater)
	})
	t.Run("volcano shore", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 141, world.BiomeVolcano, false)
		expectRun(t, c, xl, zl, StoneTop, 140, world.BlockDirt)
		expectRun(t, c, xl, zl, 141, 141, world.BlockGrass)
	})
	t.Run("volcano crater", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 180, world.BiomeVolcano, false)
		expectRun(t, c, xl, zl, StoneTop, lavaLakeTop-1, world.BlockLava)
		expectRun(t, c, xl, zl, lavaLakeTop, 180, world.BlockEmpty)
	})
	t.Run("volcano slope", func(t *testing.T) {
		c := world.NewChunk(0, 0)
		p.layColumn(c, xl, zl, 150, world.BiomeVolcano, false)
		expectRun(t, c, xl, zl, StoneTop, 149, world.BlockStone)
		if b := c.Block(xl, 150, zl); b != world.BlockStone && b != world.BlockObsidian {
			t.Errorf("volcano slope cap = %v", b)
		}
	})
}

func TestSurfaceClamp(t *testing.T) {
	tests := []struct{ in, want int }{{-5, 0}, {0, 0}, {140, 140}, {254, 254}, {400, MaxSurface}}
	for _, tt := range tests {
		if got := clampSurface(tt.in); got != tt.want {
			t.Errorf("clampSurface(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDefaultProfilesCoverBiomes(t *testing.T) {
	profiles := DefaultProfiles()
	if !profiles[world.BiomeVolcano].Volcanic {
		t.Errorf("volcano must use the crater layout")
	}
	structures := map[Structure]world.Biome{}
	for _, b := range world.Biomes() {
		if s := profiles[b].Structure; s != StructureNone {
			if other, dup := structures[s]; dup {
				t.Errorf("structure %d used by both %v and %v", s, other, b)
			}
			structures[s] = b
		}
	}
	if len(structures) != 3 {
		t.Errorf("expected three structure biomes, got %d", len(structures))
	}
}
