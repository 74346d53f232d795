package terrain

import (
	"testing"

	"voxelterra/internal/world"
)

func TestPyramidShape(t *testing.T) {
	c := world.NewChunk(0, 0)
	stampPyramid(c, 140)

	want := 0
	for z := 0; z < pyramidSpan; z++ {
		for x := 0; x < pyramidSpan; x++ {
			want += min(min(z, x), min(pyramidSpan-1-z, pyramidSpan-1-x)) + 1
		}
	}
	if got := c.Count(world.BlockSandstone); got != want {
		t.Fatalf("pyramid has %d blocks, want %d", got, want)
	}
	if c.Block(7, 147, 7) != world.BlockSandstone || c.Block(7, 148, 7) != world.BlockEmpty {
		t.Errorf("pyramid apex should be at base+7")
	}
	if c.Block(0, 140, 0) != world.BlockSandstone || c.Block(0, 141, 0) != world.BlockEmpty {
		t.Errorf("pyramid corner should be one block high")
	}
	if c.Block(15, 140, 15) != world.BlockEmpty {
		t.Errorf("pyramid footprint is 15x15")
	}
}

func TestIglooBlockCount(t *testing.T) {
	c := world.NewChunk(0, 0)
	stampIgloo(c, 150)
	want := len(iglooFloor) + 2*len(iglooWall) + len(iglooShoulder) + len(iglooCap)
	if want != 106 {
		t.Fatalf("igloo tables changed: %d cells", want)
	}
	if got := c.Count(world.BlockSnow); got != want {
		t.Errorf("igloo has %d snow blocks, want %d", got, want)
	}
	if c.Block(8, 150, 7) != world.BlockEmpty || c.Block(8, 151, 7) != world.BlockEmpty {
		t.Errorf("igloo doorway should be open")
	}
}

func TestPillars(t *testing.T) {
	c := world.NewChunk(0, 0)
	stampPillars(c, 140)
	if got := c.Count(world.BlockStone); got != len(pillarFootprint)*pillarHeight {
		t.Errorf("pillars have %d stone blocks", got)
	}
	if got := c.Count(world.BlockObsidian); got != len(pillarRoof) {
		t.Errorf("roof has %d obsidian blocks", got)
	}
	if c.Block(6, 144, 9) != world.BlockObsidian {
		t.Errorf("roof should sit on top of the pillars")
	}
}

func TestStructuresClipAtChunkTop(t *testing.T) {
	c := world.NewChunk(0, 0)
	stampPyramid(c, 252)
	stampIgloo(c, 254)
	stampPillars(c, 253)
	growTree(c, 8, 250, 8)
	growCactus(c, 2, 254, 2)
	if c.Block(7, 255, 7) == world.BlockEmpty {
		t.Errorf("expected clipped structures to still write the top layer")
	}
}

func TestTreeShape(t *testing.T) {
	c := world.NewChunk(0, 0)
	growTree(c, 8, 140, 8)
	if got := c.Count(world.BlockWood); got != trunkHeight {
		t.Errorf("trunk has %d blocks, want %d", got, trunkHeight)
	}
	if got := c.Count(world.BlockLeaves); got != 24+8+1 {
		t.Errorf("canopy has %d leaves, want 33", got)
	}
	if c.Block(8, 147, 8) != world.BlockLeaves {
		t.Errorf("tree should be topped with a leaf")
	}
	if !treeFits(3, 13) || treeFits(2, 8) || treeFits(8, 14) {
		t.Errorf("treeFits margin wrong")
	}
}

func TestBoulderAndCactus(t *testing.T) {
	c := world.NewChunk(0, 0)
	stackBoulder(c, 4, 140, 4, 3)
	growCactus(c, 5, 140, 5)
	if c.Count(world.BlockCobble) != 3 || c.Count(world.BlockCactus) != cactusHeight {
		t.Errorf("unexpected feature sizes")
	}
	stackBoulder(c, 6, 140, 6, 0)
	if c.Count(world.BlockCobble) != 3 {
		t.Errorf("zero density should place no boulder")
	}
}
