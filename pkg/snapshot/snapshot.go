// Package snapshot wraps a device so every frame shown is also saved as a
// PNG, which makes headless debugging of animations a lot less blind.
package snapshot

import (
	"image"
	"image/color"
	"image/png"

	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

// NewDir wraps dev recording into the given directory on the OS filesystem.
func NewDir(dev proto.Control, dir string, logger *zap.Logger) (proto.Control, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return New(dev, afero.NewBasePathFs(fs, dir), logger), nil
}

// New wraps dev recording into fs. All Control calls pass through; after
// each successful Display the buffer is written as <xid>.png.
func New(dev proto.Control, fs afero.Fs, logger *zap.Logger) proto.Control {
	return &Recorder{
		Control: dev,
		fs:      fs,
		logger:  logger,
	}
}

type Recorder struct {
	proto.Control
	fs     afero.Fs
	logger *zap.Logger
}

func (r *Recorder) Display() error {
	if err := r.Control.Display(); err != nil {
		return err
	}

	name := xid.New().String() + ".png"
	if err := r.save(name); err != nil {
		r.logger.With(zap.Error(err), zap.String("file", name)).Warn("snapshot failed")
		return nil
	}

	r.logger.With(zap.String("file", name)).Debug("snapshot saved")
	return nil
}

func (r *Recorder) save(name string) error {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			red, green, blue, err := r.Control.Pixel(x, y)
			if err != nil {
				return err
			}
			img.SetNRGBA(x, y, color.NRGBA{R: red, G: green, B: blue, A: 255})
		}
	}

	f, err := r.fs.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
