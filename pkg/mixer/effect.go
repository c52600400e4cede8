package mixer

import "image"

// Pixel is one cell write produced by an effect.
type Pixel struct {
	X, Y    int
	R, G, B uint8
}

// Effect turns an image into batches of pixel writes; the drawer refreshes
// the panel after each batch, which is what makes the transition visible.
type Effect interface {
	Name() string
	Process(img image.Image) (<-chan []Pixel, error)
}

func pixelAt(img image.Image, x, y int) Pixel {
	r, g, b, _ := img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).RGBA()
	return Pixel{
		X: x, Y: y,
		R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8),
	}
}
