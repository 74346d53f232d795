package terrain

import (
	"testing"

	"voxelterra/internal/world"
)

func TestDefaultPaletteComplete(t *testing.T) {
	p := DefaultPalette()
	if !p.Complete() {
		t.Fatalf("default palette should map every biome")
	}
	tests := []struct {
		biome     world.Biome
		top, fill world.BlockType
	}{
		{world.BiomeIceSpikes, world.BlockSnow, world.BlockSnow},
		{world.BiomeTundra, world.BlockSnowGrass, world.BlockDirt},
		{world.BiomeVolcano, world.BlockStone, world.BlockStone},
		{world.BiomeBadlands, world.BlockMud, world.BlockStone},
		{world.BiomeDesertMountain, world.BlockSandstone, world.BlockSand},
	}
	for _, tt := range tests {
		if got := p.Top(tt.biome); got != tt.top {
			t.Errorf("Top(%v) = %v, want %v", tt.biome, got, tt.top)
		}
		if got := p.Fill(tt.biome); got != tt.fill {
			t.Errorf("Fill(%v) = %v, want %v", tt.biome, got, tt.fill)
		}
	}
}

func TestPaletteUnmappedPanics(t *testing.T) {
	p := NewPalette(
		map[world.Biome]world.BlockType{world.BiomeDesert: world.BlockSand, world.BiomeSwamp: world.BlockGrass},
		map[world.Biome]world.BlockType{world.BiomeDesert: world.BlockSand},
	)
	if p.Complete() {
		t.Fatalf("partial palette reported complete")
	}
	if p.Top(world.BiomeDesert) != world.BlockSand {
		t.Errorf("mapped biome lookup failed")
	}
	for _, b := range []world.Biome{world.BiomeSwamp, world.BiomeVolcano} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("lookup of unmapped biome %v did not panic", b)
				}
			}()
			p.Fill(b)
		}()
	}
}

func TestPaletteIsACopy(t *testing.T) {
	top := map[world.Biome]world.BlockType{world.BiomeDesert: world.BlockSand}
	fill := map[world.Biome]world.BlockType{world.BiomeDesert: world.BlockSand}
	p := NewPalette(top, fill)
	top[world.BiomeDesert] = world.BlockLava
	if p.Top(world.BiomeDesert) != world.BlockSand {
		t.Errorf("palette changed after mutating its source map")
	}
}
