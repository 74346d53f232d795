package terrain

import (
	"fmt"

	"voxelterra/internal/world"
)

// Palette maps each biome to its surface ("top") and sub-surface ("fill")
// block. It is built once and never modified, so every painter goroutine can
// share one instance without locking.
type Palette struct {
	top    [world.NumBiomes]world.BlockType
	fill   [world.NumBiomes]world.BlockType
	mapped [world.NumBiomes]bool
}

// NewPalette copies the given tables into a Palette. A biome present in one
// table but not the other is left unmapped.
func NewPalette(top, fill map[world.Biome]world.BlockType) *Palette {
	p := &Palette{}
	for b, t := range top {
		f, ok := fill[b]
		if !ok || int(b) >= world.NumBiomes {
			continue
		}
		p.top[b] = t
		p.fill[b] = f
		p.mapped[b] = true
	}
	return p
}

// DefaultPalette returns the standard biome materials.
func DefaultPalette() *Palette {
	return NewPalette(
		map[world.Biome]world.BlockType{
			world.BiomeIceSpikes:      world.BlockSnow,
			world.BiomeSwamp:          world.BlockGrass,
			world.BiomeIsland:         world.BlockGrass,
			world.BiomeTundra:         world.BlockSnowGrass,
			world.BiomeGrassland:      world.BlockGrass,
			world.BiomeVolcano:        world.BlockStone,
			world.BiomeBadlands:       world.BlockMud,
			world.BiomeDesert:         world.BlockSand,
			world.BiomeDesertMountain: world.BlockSandstone,
		},
		map[world.Biome]world.BlockType{
			world.BiomeIceSpikes:      world.BlockSnow,
			world.BiomeSwamp:          world.BlockDirt,
			world.BiomeIsland:         world.BlockDirt,
			world.BiomeTundra:         world.BlockDirt,
			world.BiomeGrassland:      world.BlockDirt,
			world.BiomeVolcano:        world.BlockStone,
			world.BiomeBadlands:       world.BlockStone,
			world.BiomeDesert:         world.BlockSand,
			world.BiomeDesertMountain: world.BlockSand,
		},
	)
}

// Complete reports whether every biome has an entry.
func (p *Palette) Complete() bool {
	for _, ok := range p.mapped {
		if !ok {
			return false
		}
	}
	return true
}

func (p *Palette) check(b world.Biome) {
	if int(b) >= world.NumBiomes || !p.mapped[b] {
		panic(fmt.Sprintf("terrain: palette has no entry for biome %v", b))
	}
}

// Top returns the surface block of biome b. Unmapped biomes panic.
func (p *Palette) Top(b world.Biome) world.BlockType {
	p.check(b)
	return p.top[b]
}

// Fill returns the sub-surface block of biome b. Unmapped biomes panic.
func (p *Palette) Fill(b world.Biome) world.BlockType {
	p.check(b)
	return p.fill[b]
}
