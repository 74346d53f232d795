package noise

// Deterministic coordinate hashing. Every random value in this package is a
// pure function of lattice coordinates, so results are identical across
// runs and goroutines.

const (
	saltGradientX uint64 = 0x9E3779B97F4A7C15
	saltGradientY uint64 = 0xC2B2AE3D27D4EB4F
	saltGradientZ uint64 = 0x165667B19E3779F9
	saltCell      uint64 = 0x27D4EB2F165667C5
	saltScalar    uint64 = 0x94D049BB133111EB
)

// mix64 is the SplitMix64 finaliser.
func mix64(v uint64) uint64 {
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func hash2(x, z int64, salt uint64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x517CC1B727220A95 + salt
	return mix64(v + 0x9E3779B97F4A7C15)
}

func hash3(x, y, z int64, salt uint64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + salt
	return mix64(v + 0x9E3779B97F4A7C15)
}

// unit maps a hash to [0, 1) using its top 53 bits.
func unit(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

// random2 returns a point in [0,1)^2 for the lattice cell (x, z).
func random2(x, z int64, salt uint64) (float64, float64) {
	return unit(hash2(x, z, salt)), unit(hash2(x, z, salt^saltGradientY))
}

func random3(x, y, z int64) (float64, float64, float64) {
	return unit(hash3(x, y, z, saltGradientX)),
		unit(hash3(x, y, z, saltGradientY)),
		unit(hash3(x, y, z, saltGradientZ))
}

// Random1 is a uniform draw in [0, 1) seeded only by (x, z).
func Random1(x, z int) float64 {
	return unit(hash2(int64(x), int64(z), saltScalar))
}
