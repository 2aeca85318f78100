// Package texture generates the block textures and uploads them to the GPU.
package texture

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Grass shade range: green channel in [grassMin, grassMin+grassSpan).
const (
	grassMin  = 100
	grassSpan = 100
)

// Brick pattern.
const (
	BrickPeriod = 16
)

var (
	BrickColor  = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	MortarColor = color.RGBA{R: 139, G: 0, B: 0, A: 255}
)

// Grass returns a size x size texture where every pixel is a random shade of green.
func Grass(size int, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, grassShade(rng.Intn(grassSpan)))
		}
	}
	return img
}

// GrassPerlin is like Grass but the shade follows smooth Perlin noise, giving patches
// instead of per-pixel static.
func GrassPerlin(size int, seed int64) *image.RGBA {
	// alpha 2, beta 2, 3 octaves
	p := perlin.NewPerlin(2, 2, 3, seed)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := (p.Noise2D(float64(x)/8, float64(y)/8) + 1) / 2
			if n < 0 {
				n = 0
			}
			if n > 1 {
				n = 1
			}
			img.SetRGBA(x, y, grassShade(int(n*(grassSpan-1))))
		}
	}
	return img
}

func grassShade(offset int) color.RGBA {
	return color.RGBA{R: 0, G: uint8(grassMin + offset), B: 0, A: 255}
}

// Brick returns a size x size red brick texture with a mortar grid every BrickPeriod pixels.
func Brick(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := BrickColor
			if y%BrickPeriod == 0 || x%BrickPeriod == 0 {
				c = MortarColor
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
