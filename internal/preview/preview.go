package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"voxelterra/internal/meshing"
	"voxelterra/internal/world"
)

// background marks columns with no painted chunk.
var background = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

// Surface returns the topmost non-empty block of column (x, z) and its
// height. ok is false when the column has no painted chunk or is all empty.
func Surface(idx *world.Index, x, z int) (t world.BlockType, y int, ok bool) {
	c, err := idx.ChunkAt(x, z)
	if err != nil || !c.Filled() {
		return world.BlockEmpty, 0, false
	}
	lx, lz := x-c.X, z-c.Z
	for y := world.ChunkSizeY - 1; y >= 0; y-- {
		if b := c.Block(lx, y, lz); b != world.BlockEmpty {
			return b, y, true
		}
	}
	return world.BlockEmpty, 0, false
}

// shade darkens low columns and brightens high ones around sea level.
func shade(base color.NRGBA, y int) color.NRGBA {
	f := 0.6 + float64(y-100)/150
	if f < 0.4 {
		f = 0.4
	} else if f > 1.2 {
		f = 1.2
	}
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return color.NRGBA{R: scale(base.R), G: scale(base.G), B: scale(base.B), A: 255}
}

func blockColor(t world.BlockType) color.NRGBA {
	c := meshing.ColorOf(t)
	return color.NRGBA{R: uint8(c[0] * 255), G: uint8(c[1] * 255), B: uint8(c[2] * 255), A: 255}
}

// Render draws a top-down map of the size x size columns whose minimum
// corner is (minX, minZ). One pixel is one column.
func Render(idx *world.Index, minX, minZ, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for pz := 0; pz < size; pz++ {
		for px := 0; px < size; px++ {
			t, y, ok := Surface(idx, minX+px, minZ+pz)
			if !ok {
				img.SetNRGBA(px, pz, background)
				continue
			}
			img.SetNRGBA(px, pz, shade(blockColor(t), y))
		}
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbor sampling
// so individual columns stay crisp.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save writes img to path as a PNG, creating parent directories.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preview dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
