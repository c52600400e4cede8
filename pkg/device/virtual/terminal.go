// Package virtual emulates the Unicorn HAT HD in a terminal so code using
// the driver runs without the hardware.
//
// The emulation always renders the buffer in the default orientation:
// SetRotation and SetBrightness are accepted but have no effect on output.
// This mirrors the original fake-hardware behavior and is a deliberate,
// stable part of the contract, so development output stays comparable
// across machines regardless of how a particular panel is mounted.
package virtual

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

// New returns a device that renders frames as ANSI truecolor cells to out.
func New(out io.Writer, logger *zap.Logger) proto.Control {
	return &Terminal{
		out:    out,
		logger: logger,
		frame:  frame.New(),
	}
}

// Terminal is the software stand-in for the panel.
type Terminal struct {
	out    io.Writer
	logger *zap.Logger
	frame  *frame.Frame
}

func (t *Terminal) SetPixel(x, y int, r, g, b uint8) error {
	return t.frame.SetPixel(x, y, r, g, b)
}

func (t *Terminal) Pixel(x, y int) (r, g, b uint8, err error) {
	return t.frame.Pixel(x, y)
}

func (t *Terminal) Clear() {
	t.frame.Clear()
}

// SetRotation records the request but the emulation keeps rendering in the
// default orientation. See the package comment.
func (t *Terminal) SetRotation(rot frame.Rotation) error {
	if _, err := frame.ParseRotation(rot.Degrees()); err != nil {
		return err
	}
	t.logger.With(zap.Int("degrees", rot.Degrees())).Debug("rotation ignored in virtual mode")
	return nil
}

// SetBrightness is accepted and ignored; the terminal shows raw buffer
// values.
func (t *Terminal) SetBrightness(level float64) error {
	if level < 0 || level > 1 {
		return errors.Errorf("brightness must be within [0, 1], got %v", level)
	}
	t.logger.With(zap.Float64("level", level)).Debug("brightness ignored in virtual mode")
	return nil
}

// Display writes a 16-line colored rendition of the buffer. It fails only
// when the writer does.
func (t *Terminal) Display() error {
	if _, err := fmt.Fprintln(t.out, "Unicorn HAT HD:"); err != nil {
		return err
	}
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b, _ := t.frame.Pixel(x, y)
			if _, err := fmt.Fprintf(t.out, "\x1b[38;2;%d;%d;%dm*", r, g, b); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(t.out, "\x1b[0m\n"); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) Close() error {
	return nil
}
