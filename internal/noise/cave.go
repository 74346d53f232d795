package noise

import (
	"github.com/ojrac/opensimplex-go"

	"voxelterra/internal/world"
)

const (
	// LavaLevel is the altitude below which carved caves flood with lava.
	LavaLevel = 25

	caveScale       = 15.0
	caveDetailScale = 40.0
	caveDetail      = 0.35
	caveSeed        = 0x5EED
)

// caveDetailNoise adds low-frequency variation to the lattice noise so cave
// walls are less regular. It is built once and only read afterwards.
var caveDetailNoise = opensimplex.New(caveSeed)

// CaveDensity returns the 3D density at a block; positive values are solid.
func CaveDensity(x, y, z int) float64 {
	fx, fy, fz := float64(x), float64(y), float64(z)
	d := Gradient3(fx/caveScale, fy/caveScale, fz/caveScale)
	return d + caveDetail*caveDetailNoise.Eval3(fx/caveDetailScale, fy/caveDetailScale, fz/caveDetailScale)
}

// DepthSample picks the underground block at (x, y, z) when cave carving is
// on: stone where the density is positive, otherwise lava below LavaLevel
// and air above it.
func DepthSample(x, y, z int) world.BlockType {
	if CaveDensity(x, y, z) > 0 {
		return world.BlockStone
	}
	if y < LavaLevel {
		return world.BlockLava
	}
	return world.BlockEmpty
}
