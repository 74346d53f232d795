package noise

import (
	"math"
	"testing"

	"voxelterra/internal/world"
)

func TestHashDeterministic(t *testing.T) {
	first := hash2(10, -20, saltCell)
	for i := 0; i < 100; i++ {
		if h := hash2(10, -20, saltCell); h != first {
			t.Fatalf("hash2 not deterministic: %d != %d", h, first)
		}
	}
	if hash2(1, 2, saltCell) == hash2(2, 1, saltCell) {
		t.Errorf("hash2 should distinguish swapped axes")
	}
	if hash3(1, 2, 3, saltCell) == hash3(3, 2, 1, saltCell) {
		t.Errorf("hash3 should distinguish swapped axes")
	}
}

func TestRandom1Range(t *testing.T) {
	sum := 0.0
	n := 0
	for x := -50; x < 50; x++ {
		for z := -50; z < 50; z++ {
			v := Random1(x, z)
			if v < 0 || v >= 1 {
				t.Fatalf("Random1(%d,%d) = %f out of [0,1)", x, z, v)
			}
			sum += v
			n++
		}
	}
	if mean := sum / float64(n); math.Abs(mean-0.5) > 0.05 {
		t.Errorf("Random1 mean = %f, expected close to 0.5", mean)
	}
}

func TestGradientZeroOnLattice(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {1.0 / gradientScale, 0}, {-2.0 / gradientScale, 3.0 / gradientScale}} {
		if v := Gradient2(p[0], p[1]); math.Abs(v) > 1e-9 {
			t.Errorf("Gradient2(%v) = %f, want 0 on lattice points", p, v)
		}
	}
	if v := Gradient3(2, -1, 5); math.Abs(v) > 1e-9 {
		t.Errorf("Gradient3 on lattice = %f, want 0", v)
	}
}

func TestGradientBounded(t *testing.T) {
	for i := 0; i < 5000; i++ {
		x := float64(i)*0.0137 - 30
		z := float64(i)*0.0071 + 12
		if v := Gradient2(x, z); math.IsNaN(v) || math.Abs(v) > 1.5 {
			t.Fatalf("Gradient2(%f,%f) = %f out of range", x, z, v)
		}
		if v := Gradient3(x, z, x-z); math.IsNaN(v) || math.Abs(v) > 2 {
			t.Fatalf("Gradient3 = %f out of range", v)
		}
	}
}

func TestCellularRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.031 - 20
		z := float64(i)*-0.017 + 5
		v := Cellular(x, z)
		if v < 0 || v > 1 {
			t.Fatalf("Cellular(%f,%f) = %f out of [0,1]", x, z, v)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0.1, 0},
		{0.3, 0},
		{0.35, 0.5},
		{0.4, 1},
		{0.9, 1},
	}
	for _, tt := range tests {
		if got := smoothstep(0.3, 0.4, tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("smoothstep(0.3,0.4,%f) = %f, want %f", tt.x, got, tt.want)
		}
	}
}

func TestClassifyGrid(t *testing.T) {
	tests := []struct {
		temp, wet float64
		want      world.Biome
	}{
		{0.1, 0.1, world.BiomeBadlands},
		{0.1, 0.5, world.BiomeTundra},
		{0.1, 0.9, world.BiomeIceSpikes},
		{0.5, 0.1, world.BiomeDesert},
		{0.5, 0.5, world.BiomeGrassland},
		{0.5, 0.9, world.BiomeSwamp},
		{0.9, 0.1, world.BiomeDesertMountain},
		{0.9, 0.5, world.BiomeVolcano},
		{0.9, 0.9, world.BiomeIsland},
		{0.33, 0.66, world.BiomeSwamp},
	}
	for _, tt := range tests {
		if got := Classify(tt.temp, tt.wet); got != tt.want {
			t.Errorf("Classify(%.2f,%.2f) = %v, want %v", tt.temp, tt.wet, got, tt.want)
		}
	}
}

func TestHeightAndBiomeDeterministic(t *testing.T) {
	a := HeightAndBiome(0, 0)
	b := HeightAndBiome(0, 0)
	if a != b {
		t.Fatalf("HeightAndBiome(0,0) differs between calls: %+v vs %+v", a, b)
	}
	for x := -300; x <= 300; x += 37 {
		for z := -300; z <= 300; z += 41 {
			if HeightAndBiome(x, z) != HeightAndBiome(x, z) {
				t.Fatalf("HeightAndBiome(%d,%d) not deterministic", x, z)
			}
		}
	}
}

func TestHeightAndBiomePlausible(t *testing.T) {
	for x := -4000; x <= 4000; x += 97 {
		for z := -4000; z <= 4000; z += 89 {
			s := HeightAndBiome(x, z)
			if s.Height < BaseElevation-20 || s.Height > MaxHeight {
				t.Fatalf("HeightAndBiome(%d,%d) height %d implausible", x, z, s.Height)
			}
			if int(s.Biome) >= world.NumBiomes {
				t.Fatalf("HeightAndBiome(%d,%d) biome %d invalid", x, z, s.Biome)
			}
		}
	}
}

func TestStructureDensityRange(t *testing.T) {
	seen := map[int]bool{}
	for x := -3000; x <= 3000; x += 13 {
		for z := -3000; z <= 3000; z += 17 {
			d := StructureDensity(x, z)
			if d < 0 || d > 3 {
				t.Fatalf("StructureDensity(%d,%d) = %d", x, z, d)
			}
			seen[d] = true
		}
	}
	if !seen[0] {
		t.Errorf("expected most columns to have zero density")
	}
}

func TestHasPointFeatureSparse(t *testing.T) {
	hits := 0
	total := 0
	for x := 0; x < 400; x++ {
		for z := 0; z < 400; z++ {
			if HasPointFeature(x, z) {
				hits++
			}
			total++
		}
	}
	if hits == 0 || hits > total/10 {
		t.Errorf("HasPointFeature hit %d of %d columns, expected sparse but non-zero", hits, total)
	}
}

func TestDepthSampleLayers(t *testing.T) {
	for x := 0; x < 32; x++ {
		for y := 1; y < 128; y += 3 {
			b := DepthSample(x, y, x*3)
			switch {
			case y < LavaLevel && b != world.BlockStone && b != world.BlockLava:
				t.Fatalf("DepthSample below lava level = %v", b)
			case y >= LavaLevel && b != world.BlockStone && b != world.BlockEmpty:
				t.Fatalf("DepthSample above lava level = %v", b)
			}
			if DepthSample(x, y, x*3) != b {
				t.Fatalf("DepthSample not deterministic")
			}
		}
	}
}

func BenchmarkHeightAndBiome(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = HeightAndBiome(i%1024, (i*31)%1024)
	}
}
