package world

const (
	// ZoneSize is the edge length of a generation zone in blocks.
	ZoneSize = 64
	// ChunksPerZone is the number of chunks along one zone edge.
	ChunksPerZone = ZoneSize / ChunkSizeX
)

// Key packs a 2D world coordinate into one int64: x in the high 32 bits,
// z in the low 32 bits. It addresses chunks and zones in sparse maps.
type Key int64

// Pack combines x and z into a Key.
func Pack(x, z int32) Key {
	return Key(int64(x)<<32 | int64(uint32(z)))
}

// PackInt is Pack for plain ints. Values must fit in int32.
func PackInt(x, z int) Key {
	return Pack(int32(x), int32(z))
}

// Unpack returns the coordinates stored in k. The low half is sign
// extended, so negative z values survive the round trip.
func (k Key) Unpack() (x, z int32) {
	return int32(int64(k) >> 32), int32(uint32(k))
}

// XZ is Unpack widened to int.
func (k Key) XZ() (x, z int) {
	x32, z32 := k.Unpack()
	return int(x32), int(z32)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkCorner returns the 16-aligned corner of the chunk containing (x, z).
// Alignment floors, so -1 maps to -16 rather than 0.
func ChunkCorner(x, z int) (int, int) {
	return floorDiv(x, ChunkSizeX) * ChunkSizeX, floorDiv(z, ChunkSizeZ) * ChunkSizeZ
}

// ChunkKey returns the key of the chunk containing (x, z).
func ChunkKey(x, z int) Key {
	cx, cz := ChunkCorner(x, z)
	return PackInt(cx, cz)
}

// ZoneCorner returns the 64-aligned corner of the zone containing (x, z).
func ZoneCorner(x, z int) (int, int) {
	return floorDiv(x, ZoneSize) * ZoneSize, floorDiv(z, ZoneSize) * ZoneSize
}

// ZoneKey returns the key of the zone containing (x, z).
func ZoneKey(x, z int) Key {
	zx, zz := ZoneCorner(x, z)
	return PackInt(zx, zz)
}

// ZoneChunks returns the corners of the 16 chunks inside the zone whose
// lower-left corner is (zx, zz), x-major.
func ZoneChunks(zx, zz int) [ChunksPerZone * ChunksPerZone][2]int {
	var out [ChunksPerZone * ChunksPerZone][2]int
	i := 0
	for x := zx; x < zx+ZoneSize; x += ChunkSizeX {
		for z := zz; z < zz+ZoneSize; z += ChunkSizeZ {
			out[i] = [2]int{x, z}
			i++
		}
	}
	return out
}

// ZoneRing returns the keys of the (2r+1)^2 zones centred on the zone
// whose corner is (zx, zz).
func ZoneRing(zx, zz, r int) map[Key]struct{} {
	ring := make(map[Key]struct{}, (2*r+1)*(2*r+1))
	span := r * ZoneSize
	for x := zx - span; x <= zx+span; x += ZoneSize {
		for z := zz - span; z <= zz+span; z += ZoneSize {
			ring[PackInt(x, z)] = struct{}{}
		}
	}
	return ring
}
