package noise

import "math"

// gradientScale stretches 2D input before lattice lookup.
const gradientScale = 15

func fade(t float64) float64 {
	return 1 - 6*t*t*t*t*t + 15*t*t*t*t - 10*t*t*t
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

func surflet2(px, py float64, gx, gy int64) float64 {
	dx := px - float64(gx)
	dy := py - float64(gy)
	rx, ry := random2(gx, gy, saltGradientX)
	return (dx*(2*rx-1) + dy*(2*ry-1)) * fade(math.Abs(dx)) * fade(math.Abs(dy))
}

// Gradient2 is 2D Perlin-style surflet noise. Output lies roughly in
// [-0.75, 0.75] and is zero on lattice points.
func Gradient2(x, y float64) float64 {
	x *= gradientScale
	y *= gradientScale
	fx := int64(math.Floor(x))
	fy := int64(math.Floor(y))
	sum := 0.0
	for dx := int64(0); dx <= 1; dx++ {
		for dy := int64(0); dy <= 1; dy++ {
			sum += surflet2(x, y, fx+dx, fy+dy)
		}
	}
	return sum
}

func surflet3(px, py, pz float64, gx, gy, gz int64) float64 {
	dx := px - float64(gx)
	dy := py - float64(gy)
	dz := pz - float64(gz)
	rx, ry, rz := random3(gx, gy, gz)
	dot := dx*(2*rx-1) + dy*(2*ry-1) + dz*(2*rz-1)
	return dot * fade(math.Abs(dx)) * fade(math.Abs(dy)) * fade(math.Abs(dz))
}

// Gradient3 is the 3D counterpart of Gradient2. Input is used unscaled.
func Gradient3(x, y, z float64) float64 {
	fx := int64(math.Floor(x))
	fy := int64(math.Floor(y))
	fz := int64(math.Floor(z))
	sum := 0.0
	for dx := int64(0); dx <= 1; dx++ {
		for dy := int64(0); dy <= 1; dy++ {
			for dz := int64(0); dz <= 1; dz++ {
				sum += surflet3(x, y, z, fx+dx, fy+dy, fz+dz)
			}
		}
	}
	return sum
}
