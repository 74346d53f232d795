package terrain

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"voxelterra/internal/noise"
	"voxelterra/internal/profiling"
	"voxelterra/internal/world"
)

const (
	riverIterations = 3
	riverBranch     = 0.2
	riverRadius     = 3
	riverBank       = 5
	riverHeadroom   = 7
	riverForkAngle  = 30
	riverCurve      = 3.5
	riverSubSteps   = 3
)

// turtle walks the river string in the XZ plane.
type turtle struct {
	pos     mgl32.Vec3
	forward mgl32.Vec3
}

func newTurtle(x, z int, heading float32) turtle {
	t := turtle{pos: mgl32.Vec3{float32(x), WaterLevel + 2, float32(z)}, forward: mgl32.Vec3{0, 0, 1}}
	t.rotate(heading)
	return t
}

func (t *turtle) rotate(degrees float32) {
	t.forward = mgl32.Rotate3DY(mgl32.DegToRad(degrees)).Mul3x1(t.forward)
}

func (t *turtle) move(dist float32) (int, int) {
	t.pos = t.pos.Add(t.forward.Mul(dist))
	return int(math.Round(float64(t.pos.X()))), int(math.Round(float64(t.pos.Z())))
}

// River carves water channels into already painted terrain.
type River struct {
	idx     *world.Index
	palette *Palette
	touched map[world.Key]struct{}
}

// NewRiver returns a river carver writing into idx.
func NewRiver(idx *world.Index, palette *Palette) *River {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &River{idx: idx, palette: palette, touched: make(map[world.Key]struct{})}
}

// Carve grows a branching river from (x, z) along heading (degrees, 0 is +Z)
// and returns the keys of every chunk it modified, sorted. Only filled
// chunks are written; segments leaving loaded terrain are skipped.
// Carve must run on the goroutine that owns the index.
func (r *River) Carve(x, z int, heading float32, seed int64) []world.Key {
	defer profiling.Track("terrain.River.Carve")()
	rng := rand.New(rand.NewSource(seed))
	program := riverSystem.Expand(rng, riverIterations, 0, riverBranch)

	var stack []turtle
	cur := newTurtle(x, z, heading)
	sx, sz := x, z
	for _, op := range program {
		switch op {
		case 'F':
			step := float32(3 + rng.Intn(2))
			var curve float32
			switch kind := rng.Float64(); {
			case kind < 0.25:
				curve = riverCurve
			case kind < 0.5:
				curve = -riverCurve
			}
			for i := 0; i < riverSubSteps; i++ {
				cur.rotate(curve)
				ex, ez := cur.move(step)
				if r.loaded(sx, sz) && r.loaded(ex, ez) {
					h1 := noise.HeightAndBiome(sx, sz).Height - 1
					h2 := noise.HeightAndBiome(ex, ez).Height - 1
					r.carveSegment(sx, sz, ex, ez, h1, h2)
				}
				sx, sz = ex, ez
			}
		case '[':
			stack = append(stack, cur)
		case ']':
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			sx, sz = int(math.Round(float64(cur.pos.X()))), int(math.Round(float64(cur.pos.Z())))
		case '+':
			cur.rotate(riverForkAngle)
		case '-':
			cur.rotate(-riverForkAngle)
		}
	}

	keys := maps.Keys(r.touched)
	slices.Sort(keys)
	clear(r.touched)
	return keys
}

func (r *River) loaded(x, z int) bool {
	c, err := r.idx.ChunkAt(x, z)
	return err == nil && c.Filled()
}

// carveSegment cuts a channel of riverRadius around the segment from
// (x1, z1) to (x2, z2), whose bed runs from y1 to y2, and slopes the banks
// down to it.
func (r *River) carveSegment(x1, z1, x2, z2, y1, y2 int) {
	reach := riverRadius + riverBank
	for x := min(x1, x2) - reach; x <= max(x1, x2)+reach; x++ {
		for z := min(z1, z2) - reach; z <= max(z1, z2)+reach; z++ {
			if !r.loaded(x, z) {
				continue
			}
			d, t := segmentDistance(float64(x), float64(z), float64(x1), float64(z1), float64(x2), float64(z2))
			level := int(math.Round(float64(y1) + float64(y2-y1)*t))
			switch {
			case d <= riverRadius:
				r.channel(x, z, level, d)
			case d <= float64(reach):
				r.bank(x, z, level, (d-riverRadius)/riverBank)
			}
		}
	}
}

// channel fills a column with water below level and clears the air above.
func (r *River) channel(x, z, level int, d float64) {
	depth := int(math.Sqrt(riverRadius*riverRadius - d*d))
	for y := level - depth; y < level; y++ {
		r.set(x, y, z, world.BlockWater)
	}
	for y := level; y <= level+riverRadius+riverHeadroom; y++ {
		r.set(x, y, z, world.BlockEmpty)
	}
}

// bank lowers a column toward the channel level. frac runs from 0 at the
// water's edge to 1 at the outer edge of the bank.
func (r *River) bank(x, z, level int, frac float64) {
	ground := r.surface(x, z, level)
	if ground <= level {
		return
	}
	target := level + int(math.Floor(float64(ground-level)*frac))
	if target >= ground {
		return
	}
	biome := noise.HeightAndBiome(x, z).Biome
	r.set(x, target, z, r.palette.Top(biome))
	for y := target + 1; y <= ground; y++ {
		r.set(x, y, z, world.BlockEmpty)
	}
}

// surface returns the highest solid block at or above from.
func (r *River) surface(x, z, from int) int {
	y := from
	for y+1 < world.ChunkSizeY {
		b, err := r.idx.BlockAt(x, y+1, z)
		if err != nil || b == world.BlockEmpty {
			break
		}
		y++
	}
	return y
}

func (r *River) set(x, y, z int, t world.BlockType) {
	if y < 1 || y >= world.ChunkSizeY {
		return
	}
	if err := r.idx.SetBlockAt(x, y, z, t); err == nil {
		r.touched[world.ChunkKey(x, z)] = struct{}{}
	}
}

// segmentDistance returns the distance from p to segment ab and the
// parameter of the closest point along it.
func segmentDistance(px, pz, ax, az, bx, bz float64) (float64, float64) {
	dx, dz := bx-ax, bz-az
	l2 := dx*dx + dz*dz
	t := 0.0
	if l2 > 0 {
		t = math.Max(0, math.Min(1, ((px-ax)*dx+(pz-az)*dz)/l2))
	}
	cx, cz := ax+t*dx, az+t*dz
	return math.Hypot(px-cx, pz-cz), t
}
