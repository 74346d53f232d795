package noise

import "math"

// cellularScale sets the number of Worley cells per input unit.
const cellularScale = 8

// Cellular returns the Worley distance from (x, y) to the nearest feature
// point, in cell units and clamped to at most 1.
func Cellular(x, y float64) float64 {
	x *= cellularScale
	y *= cellularScale
	cx := math.Floor(x)
	cy := math.Floor(y)
	fx := x - cx
	fy := y - cy
	minDist := 1.0
	for ny := -1; ny <= 1; ny++ {
		for nx := -1; nx <= 1; nx++ {
			px, py := random2(int64(cx)+int64(nx), int64(cy)+int64(ny), saltCell)
			dx := float64(nx) + px - fx
			dy := float64(ny) + py - fy
			minDist = math.Min(minDist, math.Sqrt(dx*dx+dy*dy))
		}
	}
	return minDist
}
