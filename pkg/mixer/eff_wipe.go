package mixer

import (
	"image"

	"unicornhd/pkg/frame"
)

// EffectWipe reveals the image column by column, left to right.
func EffectWipe() Effect {
	return &wipe{}
}

type wipe struct {
}

func (e *wipe) Name() string {
	return "wipe"
}

func (e *wipe) Process(img image.Image) (<-chan []Pixel, error) {
	wc := make(chan []Pixel)

	go func() {
		for x := 0; x < frame.Width; x++ {
			col := make([]Pixel, 0, frame.Height)
			for y := 0; y < frame.Height; y++ {
				col = append(col, pixelAt(img, x, y))
			}
			wc <- col
		}
		close(wc)
	}()

	return wc, nil
}
