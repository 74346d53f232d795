package noise

import (
	"math"

	"voxelterra/internal/world"
)

const (
	// BaseElevation is added to every blended height profile.
	BaseElevation = 128
	// MaxHeight caps sharp spike profiles so every column fits in a chunk.
	MaxHeight = world.ChunkSizeY - 1

	// worldScale converts block coordinates into height-field space.
	worldScale = 2700.0
	// biomeScale further stretches the temperature/wetness fields.
	biomeScale = 1.5
)

// Sample is the noise field's per-column output.
type Sample struct {
	Height int
	Biome  world.Biome
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Temperature returns the 0..1 temperature field at field-space (bx, bz).
func Temperature(bx, bz float64) float64 {
	t := Gradient2(bx, bz) + 0.5
	return 0.5 * (smoothstep(0.30, 0.40, t) + smoothstep(0.58, 0.68, t))
}

// Wetness returns the 0..1 wetness field at field-space (bx, bz).
func Wetness(bx, bz float64) float64 {
	w := Cellular(bx, bz)*0.7 + Cellular(bx*2, bz*2)*0.3
	return 0.5 * (smoothstep(0.27, 0.38, w) + smoothstep(0.58, 0.68, w))
}

func grassHeight(x, z float64) float64 {
	v := math.Pow(math.Max(1+Gradient2(x*8, z*8), 0), 0.2)
	v = clamp01(v - 0.5)
	return v + (1-Cellular(x*2, z*2))*0.8
}

func mountainHeight(x, z float64) float64 {
	v := math.Pow(0.8+Gradient2(x*2.5, z*2.5), 3)
	return clamp01(v - 0.4)
}

func spikeHeight(x, z float64) float64 {
	v := math.Pow(0.8+Gradient2(x, z), 3)
	return v - 0.4
}

// heightFunc computes a biome's height offset above BaseElevation. grass is
// the shared rolling-grass field at (x, z).
type heightFunc func(x, z, grass float64) float64

var biomeHeights = [world.NumBiomes]heightFunc{
	world.BiomeBadlands: func(x, z, grass float64) float64 {
		return grassHeight(x+40, z+90)*3 + grass*7 + 2
	},
	world.BiomeDesert: func(x, z, grass float64) float64 {
		return grass*10 + 4
	},
	world.BiomeTundra: func(x, z, grass float64) float64 {
		return grass * 19
	},
	world.BiomeGrassland: func(x, z, grass float64) float64 {
		return grass * 16
	},
	world.BiomeDesertMountain: func(x, z, grass float64) float64 {
		return mountainHeight(x, z)*44 + 6
	},
	world.BiomeVolcano: func(x, z, grass float64) float64 {
		v := math.Pow(1-Cellular(x*4, z*4), 1.5)*10 + Gradient2(x*5, z*5)*2
		return math.Pow(math.Max(v, 0), 1.6) + 5
	},
	world.BiomeIceSpikes: func(x, z, grass float64) float64 {
		return math.Pow(spikeHeight(x, z)*1.8, 4) + 11
	},
	world.BiomeSwamp: func(x, z, grass float64) float64 {
		return grassHeight(x*10, z*10)*3 + 7
	},
	world.BiomeIsland: func(x, z, grass float64) float64 {
		return (1-Cellular(x*5, z*5))*14 + Gradient2(x*4, z*4)*8
	},
}

// quadrant lists the four height profiles blended inside one
// temperature/wetness quadrant: {dry-cold, dry-warm, wet-cold, wet-warm}
// relative to the quadrant's own corner.
type quadrant [4]world.Biome

// quadrants is indexed [wetness >= 0.5][temperature >= 0.5].
var quadrants = [2][2]quadrant{
	{
		{world.BiomeBadlands, world.BiomeDesert, world.BiomeTundra, world.BiomeGrassland},
		{world.BiomeDesert, world.BiomeDesertMountain, world.BiomeGrassland, world.BiomeVolcano},
	},
	{
		{world.BiomeTundra, world.BiomeGrassland, world.BiomeIceSpikes, world.BiomeSwamp},
		{world.BiomeGrassland, world.BiomeVolcano, world.BiomeSwamp, world.BiomeIsland},
	},
}

// biomeGrid is indexed [temperature tertile][wetness tertile].
var biomeGrid = [3][3]world.Biome{
	{world.BiomeBadlands, world.BiomeTundra, world.BiomeIceSpikes},
	{world.BiomeDesert, world.BiomeGrassland, world.BiomeSwamp},
	{world.BiomeDesertMountain, world.BiomeVolcano, world.BiomeIsland},
}

func tertile(v float64) int {
	switch {
	case v < 0.33:
		return 0
	case v < 0.66:
		return 1
	}
	return 2
}

// Classify maps a temperature/wetness pair to its biome tag.
func Classify(temp, wet float64) world.Biome {
	return biomeGrid[tertile(temp)][tertile(wet)]
}

// HeightAndBiome returns the surface height and biome of column (x, z).
// It is a pure function: the same input always yields the same Sample.
func HeightAndBiome(x, z int) Sample {
	fx := float64(x) / worldScale
	fz := float64(z) / worldScale
	bx := fx / biomeScale
	bz := fz / biomeScale

	temp := Temperature(bx, bz)
	wet := Wetness(bx, bz)
	grass := grassHeight(fx, fz)

	wi, ti := 0, 0
	tt, wt := temp*2, wet*2
	if wet >= 0.5 {
		wi = 1
		wt = (wet - 0.5) * 2
	}
	if temp >= 0.5 {
		ti = 1
		tt = (temp - 0.5) * 2
	}
	q := quadrants[wi][ti]
	h := func(b world.Biome) float64 { return biomeHeights[b](fx, fz, grass) }

	h1 := mix(h(q[0]), h(q[1]), tt)
	h2 := mix(h(q[2]), h(q[3]), tt)
	height := int(BaseElevation + mix(h1, h2, wt))
	if height > MaxHeight {
		height = MaxHeight
	}

	return Sample{Height: height, Biome: Classify(temp, wet)}
}

// StructureDensity returns a 0..3 count from a coarse Worley field. It
// drives boulder stack heights and volcanic obsidian caps.
func StructureDensity(x, z int) int {
	n := Cellular(float64(x)/200, float64(z)/200)
	switch {
	case n < 0.035:
		return 3
	case n < 0.08:
		return 2
	case n < 0.12:
		return 1
	}
	return 0
}

// HasPointFeature reports whether (x, z) sits close to a fine Worley
// feature point. Cacti and trees grow only on such columns.
func HasPointFeature(x, z int) bool {
	return Cellular(float64(x)/2, float64(z)/2) < 0.045
}
