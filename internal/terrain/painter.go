package terrain

import (
	"voxelterra/internal/config"
	"voxelterra/internal/noise"
	"voxelterra/internal/profiling"
	"voxelterra/internal/world"
)

// Sink receives painter output. A painter publishes every chunk of a zone
// before the zone itself.
type Sink interface {
	ChunkFilled(c *world.Chunk)
	ZoneGenerated(zone world.Key)
}

// Painter fills chunk block data from the noise field. A Painter holds no
// mutable state and is safe for concurrent use.
type Painter struct {
	palette  *Palette
	profiles [world.NumBiomes]Profile

	caves           bool
	structureChance float64
	treeChance      float64
}

// NewPainter creates a painter using the given palette and the generation
// settings from s. A nil palette selects DefaultPalette.
func NewPainter(p *Palette, s config.Settings) *Painter {
	if p == nil {
		p = DefaultPalette()
	}
	return &Painter{
		palette:         p,
		profiles:        DefaultProfiles(),
		caves:           s.Caves,
		structureChance: s.StructureChance,
		treeChance:      s.TreeChance,
	}
}

// Palette returns the painter's palette.
func (p *Painter) Palette() *Palette {
	return p.palette
}

// PaintZone fills the 16 chunks of the zone whose corner is (zx, zz). The
// chunks must already exist in idx. Each chunk is marked filled and handed
// to sink, then the zone key is published. sink may be nil.
func (p *Painter) PaintZone(idx *world.Index, zx, zz int, sink Sink) {
	defer profiling.Track("terrain.PaintZone")()
	zx, zz = world.ZoneCorner(zx, zz)
	for _, corner := range world.ZoneChunks(zx, zz) {
		c := idx.MustChunkAt(corner[0], corner[1])
		p.PaintChunk(c)
		c.MarkFilled()
		if sink != nil {
			sink.ChunkFilled(c)
		}
	}
	if sink != nil {
		sink.ZoneGenerated(world.PackInt(zx, zz))
	}
}

// GenerateZone instantiates and paints a zone synchronously.
func (p *Painter) GenerateZone(idx *world.Index, zx, zz int) {
	zx, zz = world.ZoneCorner(zx, zz)
	for _, corner := range world.ZoneChunks(zx, zz) {
		idx.InstantiateChunk(corner[0], corner[1])
	}
	p.PaintZone(idx, zx, zz, nil)
}

// IsStructureChunk reports whether the chunk with corner (cx, cz) hosts a
// structure. Cacti do not grow in structure chunks.
func (p *Painter) IsStructureChunk(cx, cz int) bool {
	return noise.Random1(cx, cz) < p.structureChance
}

// PaintChunk writes the block data of a single chunk. It does not mark the
// chunk filled.
func (p *Painter) PaintChunk(c *world.Chunk) {
	p.paintBase(c)
	structure := p.IsStructureChunk(c.X, c.Z)
	for xl := 0; xl < world.ChunkSizeX; xl++ {
		for zl := 0; zl < world.ChunkSizeZ; zl++ {
			p.paintColumn(c, xl, zl, structure)
		}
	}
	if structure {
		p.stampStructure(c)
	}
}

func (p *Painter) paintBase(c *world.Chunk) {
	for zl := 0; zl < world.ChunkSizeZ; zl++ {
		for xl := 0; xl < world.ChunkSizeX; xl++ {
			c.SetBlock(xl, 0, zl, world.BlockBedrock)
		}
	}
	for zl := 0; zl < world.ChunkSizeZ; zl++ {
		for y := 1; y < StoneTop; y++ {
			for xl := 0; xl < world.ChunkSizeX; xl++ {
				b := world.BlockStone
				if p.caves {
					b = noise.DepthSample(c.X+xl, y, c.Z+zl)
				}
				c.SetBlock(xl, y, zl, b)
			}
		}
	}
}

func clampSurface(h int) int {
	return min(max(h, 0), MaxSurface)
}

func (p *Painter) paintColumn(c *world.Chunk, xl, zl int, structure bool) {
	s := noise.HeightAndBiome(c.X+xl, c.Z+zl)
	p.layColumn(c, xl, zl, clampSurface(s.Height), s.Biome, structure)
}

// layColumn writes the surface layers of one column whose surface is at h.
func (p *Painter) layColumn(c *world.Chunk, xl, zl, h int, biome world.Biome, structure bool) {
	wx, wz := c.X+xl, c.Z+zl
	prof := p.profiles[biome]
	top := p.palette.Top(biome)
	fill := p.palette.Fill(biome)

	if prof.Volcanic {
		p.paintVolcano(c, xl, zl, h, top, fill)
		return
	}

	c.SetBlock(xl, h, zl, top)
	if prof.CapFrom > 0 {
		c.FillColumn(xl, zl, StoneTop, min(h, prof.CapFrom), fill)
		c.SetBlock(xl, h, zl, fill)
		c.FillColumn(xl, zl, prof.CapFrom, h+1, top)
	} else {
		c.FillColumn(xl, zl, StoneTop, h, fill)
	}

	if prof.BeachBelow > 0 && h < prof.BeachBelow {
		c.FillColumn(xl, zl, StoneTop, h+1, world.BlockSand)
	}

	if h < WaterLevel {
		c.FillColumn(xl, zl, h, WaterLevel+1, world.BlockWater)
		if prof.IceCap {
			c.SetBlock(xl, WaterLevel, zl, world.BlockIce)
		}
	} else {
		switch prof.Feature {
		case FeatureCactus:
			if !structure && noise.HasPointFeature(wx, wz) {
				growCactus(c, xl, h, zl)
			}
		case FeatureTree:
			if noise.HasPointFeature(wx, wz) && treeFits(xl, zl) && noise.Random1(wx, wz) < p.treeChance {
				growTree(c, xl, h, zl)
			}
		}
	}

	if prof.Boulders {
		stackBoulder(c, xl, h, zl, noise.StructureDensity(wx, wz))
	}
}

// paintVolcano lays out a volcanic column: flooded lowlands, a grassy
// shore, a lava lake in the crater and bare rock in between.
func (p *Painter) paintVolcano(c *world.Chunk, xl, zl, h int, top, fill world.BlockType) {
	switch {
	case h < WaterLevel:
		c.FillColumn(xl, zl, h, WaterLevel+1, world.BlockWater)
		c.FillColumn(xl, zl, StoneTop, h, world.BlockDirt)
	case h < volcanoShore:
		c.FillColumn(xl, zl, StoneTop, h, world.BlockDirt)
		c.SetBlock(xl, h, zl, world.BlockGrass)
	case h > volcanoCrater:
		c.FillColumn(xl, zl, StoneTop, lavaLakeTop, world.BlockLava)
	default:
		c.FillColumn(xl, zl, StoneTop, h, fill)
		if noise.StructureDensity(c.X+xl, c.Z+zl) > 0 {
			c.SetBlock(xl, h, zl, world.BlockObsidian)
		} else {
			c.SetBlock(xl, h, zl, top)
		}
	}
}
