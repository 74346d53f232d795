package world

import (
	"math"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 15, -16, 64, -65, 1 << 20, -(1 << 20), math.MaxInt32, math.MinInt32, math.MaxInt32 - 1, math.MinInt32 + 1}
	for _, x := range values {
		for _, z := range values {
			k := Pack(x, z)
			gx, gz := k.Unpack()
			if gx != x || gz != z {
				t.Fatalf("Pack(%d,%d).Unpack() = (%d,%d)", x, z, gx, gz)
			}
		}
	}
}

func TestPackDistinct(t *testing.T) {
	seen := make(map[Key][2]int32)
	for x := int32(-3); x <= 3; x++ {
		for z := int32(-3); z <= 3; z++ {
			k := Pack(x, z)
			if prev, ok := seen[k]; ok {
				t.Fatalf("Pack(%d,%d) collides with %v", x, z, prev)
			}
			seen[k] = [2]int32{x, z}
		}
	}
}

func TestChunkCornerFloors(t *testing.T) {
	tests := []struct {
		x, z   int
		cx, cz int
	}{
		{0, 0, 0, 0},
		{15, 15, 0, 0},
		{16, 31, 16, 16},
		{-1, -1, -16, -16},
		{-16, -17, -16, -32},
		{8, -8, 0, -16},
	}
	for _, tt := range tests {
		cx, cz := ChunkCorner(tt.x, tt.z)
		if cx != tt.cx || cz != tt.cz {
			t.Errorf("ChunkCorner(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.z, cx, cz, tt.cx, tt.cz)
		}
	}
}

func TestZoneCornerAligned(t *testing.T) {
	for x := -200; x <= 200; x += 7 {
		for z := -200; z <= 200; z += 11 {
			zx, zz := ZoneCorner(x, z)
			if zx%ZoneSize != 0 || zz%ZoneSize != 0 {
				t.Fatalf("ZoneCorner(%d,%d) = (%d,%d) not aligned", x, z, zx, zz)
			}
			if zx > x || zz > z {
				t.Fatalf("ZoneCorner(%d,%d) = (%d,%d) exceeds input", x, z, zx, zz)
			}
			if x-zx >= ZoneSize || z-zz >= ZoneSize {
				t.Fatalf("ZoneCorner(%d,%d) = (%d,%d) not the containing zone", x, z, zx, zz)
			}
			ax, az := ZoneCorner(zx, zz)
			if ax != zx || az != zz {
				t.Fatalf("ZoneCorner not idempotent at (%d,%d)", zx, zz)
			}
		}
	}
}

func TestZoneChunks(t *testing.T) {
	chunks := ZoneChunks(-64, 128)
	seen := make(map[[2]int]bool)
	for _, c := range chunks {
		if c[0] < -64 || c[0] >= 0 || c[1] < 128 || c[1] >= 192 {
			t.Errorf("chunk corner %v outside zone", c)
		}
		if c[0]%ChunkSizeX != 0 || c[1]%ChunkSizeZ != 0 {
			t.Errorf("chunk corner %v not aligned", c)
		}
		seen[c] = true
	}
	if len(seen) != 16 {
		t.Errorf("expected 16 distinct chunks, got %d", len(seen))
	}
}

func TestZoneRing(t *testing.T) {
	ring := ZoneRing(0, 0, 2)
	if len(ring) != 25 {
		t.Fatalf("expected 25 zones, got %d", len(ring))
	}
	for _, k := range []Key{PackInt(-128, -128), PackInt(128, 128), PackInt(0, 0), PackInt(-64, 64)} {
		if _, ok := ring[k]; !ok {
			x, z := k.XZ()
			t.Errorf("zone (%d,%d) missing from ring", x, z)
		}
	}
	if _, ok := ring[PackInt(192, 0)]; ok {
		t.Errorf("zone (192,0) should be outside radius 2")
	}
}
