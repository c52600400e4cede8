// Package unicornhd drives the physical Unicorn HAT HD over SPI.
package unicornhd

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

// New opens the bus and returns a hardware-backed device. Rotation defaults
// to Rot0 and brightness to 1.0, so the wire output is the raw buffer until
// either is changed.
func New(spi *proto.SPI, logger *zap.Logger) (proto.Control, error) {
	dev := &UnicornHD{
		spi:        spi,
		logger:     logger,
		frame:      frame.New(),
		brightness: 1.0,
	}
	return dev, spi.Open(&proto.Options{})
}

// UnicornHD owns the pixel buffer and the bus handle. Not safe for
// concurrent use.
type UnicornHD struct {
	spi        *proto.SPI
	logger     *zap.Logger
	frame      *frame.Frame
	rotation   frame.Rotation
	brightness float64
}

func (u *UnicornHD) SetPixel(x, y int, r, g, b uint8) error {
	return u.frame.SetPixel(x, y, r, g, b)
}

func (u *UnicornHD) Pixel(x, y int) (r, g, b uint8, err error) {
	return u.frame.Pixel(x, y)
}

func (u *UnicornHD) Clear() {
	u.frame.Clear()
}

// SetRotation changes the encode-time orientation. It does not touch the
// buffer, so frames already drawn re-encode under the new orientation on the
// next Display.
func (u *UnicornHD) SetRotation(rot frame.Rotation) error {
	if _, err := frame.ParseRotation(rot.Degrees()); err != nil {
		return err
	}
	u.rotation = rot
	return nil
}

// SetBrightness sets the channel scale applied at encode time. Stored pixel
// values are left unscaled.
func (u *UnicornHD) SetBrightness(level float64) error {
	if level < 0 || level > 1 {
		return errors.Errorf("brightness must be within [0, 1], got %v", level)
	}
	u.brightness = level
	return nil
}

// Display encodes the buffer and sends it to the panel in one bus write.
// On failure the buffer is untouched; the caller decides whether to resend
// the whole frame.
func (u *UnicornHD) Display() error {
	return u.sendFrame(u.frame.Encode(u.rotation, u.brightness))
}

func (u *UnicornHD) Close() error {
	return u.spi.Close()
}
