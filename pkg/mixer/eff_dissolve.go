package mixer

import (
	"image"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"unicornhd/pkg/frame"
)

// EffectDissolve reveals the image cell by cell in random order.
func EffectDissolve() Effect {
	return &dissolve{batch: 16}
}

type dissolve struct {
	batch int
}

func (e *dissolve) Name() string {
	return "dissolve"
}

func (e *dissolve) Process(img image.Image) (<-chan []Pixel, error) {
	wc := make(chan []Pixel)

	go func() {
		rand.Seed(time.Now().UnixNano())

		ps := make([]Pixel, 0, frame.NumPixels)
		for x := 0; x < frame.Width; x++ {
			for y := 0; y < frame.Height; y++ {
				ps = append(ps, pixelAt(img, x, y))
			}
		}
		lo.Shuffle(ps)

		for len(ps) > 0 {
			n := e.batch
			if n > len(ps) {
				n = len(ps)
			}
			wc <- ps[:n]
			ps = ps[n:]
		}
		close(wc)
	}()

	return wc, nil
}
