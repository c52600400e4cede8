package mixer

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/samber/lo"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

func NewDrawer(dst proto.Control, opts ...Option) *Drawer {
	d := &Drawer{
		dev: dst,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Drawer struct {
	dev  proto.Control
	effs []Effect
}

// Canvas fits img to the panel and pushes it to the device. When effects are
// configured one is picked at random and the panel is refreshed after each
// batch it emits; otherwise the image lands in a single Display call.
func (d *Drawer) Canvas(img image.Image) error {
	img = imaging.Fill(img, frame.Width, frame.Height, imaging.Center, imaging.Lanczos)

	eff := lo.Sample(d.effs)
	if eff != nil {
		w, err := eff.Process(img)
		if err != nil {
			return err
		}

		for batch := range w {
			for _, p := range batch {
				if err := d.dev.SetPixel(p.X, p.Y, p.R, p.G, p.B); err != nil {
					return err
				}
			}
			if err := d.dev.Display(); err != nil {
				return err
			}
		}
		return nil
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			p := pixelAt(img, x, y)
			if err := d.dev.SetPixel(p.X, p.Y, p.R, p.G, p.B); err != nil {
				return err
			}
		}
	}
	return d.dev.Display()
}
