package renderer

import (
	"image"
	"image/color"

	perlin "github.com/aquilax/go-perlin"
)

// PlaceholderImage generates a warm noise pattern used in place of a scene
// texture whose file is missing or undecodable. Keeping the fallback
// procedural avoids shipping binary assets with the repository.
func PlaceholderImage(width, height int, seed int64) *image.RGBA {
	p := perlin.NewPerlin(2, 2, 3, seed)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Stretch the noise along X for a grain-like pattern.
			n := p.Noise2D(float64(x)/float64(width)*2.0, float64(y)/float64(height)*8.0)
			v := (n + 1) / 2

			r := uint8(110 + v*90)
			g := uint8(70 + v*60)
			b := uint8(35 + v*35)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
