// Package frame holds the 16x16 pixel buffer for the Unicorn HAT HD and
// turns it into the byte stream the panel expects on the wire.
package frame

import (
	"github.com/pkg/errors"
)

const (
	// Width and Height of the Unicorn HAT HD panel. The panel is fixed
	// size, there is no variant with a different geometry.
	Width  = 16
	Height = 16

	// NumPixels is the cell count of one full frame.
	NumPixels = Width * Height
)

// Rotation selects how the buffer is mapped onto the panel at encode time.
// The stored buffer itself is never permuted.
type Rotation int

const (
	// Rot0 is the default orientation.
	Rot0 Rotation = iota
	// Rot90 rotates the output 90 degrees clockwise.
	Rot90
	// Rot180 rotates the output 180 degrees.
	Rot180
	// Rot270 rotates the output 90 degrees counter-clockwise.
	Rot270
)

// ParseRotation maps degrees (0, 90, 180, 270) to a Rotation.
func ParseRotation(deg int) (Rotation, error) {
	switch deg {
	case 0:
		return Rot0, nil
	case 90:
		return Rot90, nil
	case 180:
		return Rot180, nil
	case 270:
		return Rot270, nil
	}
	return Rot0, errors.Errorf("rotation must be one of 0, 90, 180, 270, got %d", deg)
}

// Degrees returns the rotation as degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// New returns a cleared frame.
func New() *Frame {
	return &Frame{}
}

// Frame is one complete 16x16 RGB pixel buffer. The zero value is a black
// frame and ready to use. A Frame is not safe for concurrent use.
type Frame struct {
	leds [NumPixels][3]uint8
}

// SetPixel stores an RGB triple at (x, y). The origin (0, 0) is the top-left
// of the panel, x grows to the right and y grows down. Coordinates outside
// [0, 16) return an error and leave the buffer untouched.
func (f *Frame) SetPixel(x, y int, r, g, b uint8) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return errors.Errorf("pixel (%d, %d) out of range [0, %d)x[0, %d)", x, y, Width, Height)
	}
	f.leds[y*Width+x] = [3]uint8{r, g, b}
	return nil
}

// Pixel returns the stored RGB triple at (x, y). This is the buffered value,
// not what the panel currently shows, and rotation does not affect it.
func (f *Frame) Pixel(x, y int) (r, g, b uint8, err error) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, 0, 0, errors.Errorf("pixel (%d, %d) out of range [0, %d)x[0, %d)", x, y, Width, Height)
	}
	c := f.leds[y*Width+x]
	return c[0], c[1], c[2], nil
}

// Clear sets every cell to black.
func (f *Frame) Clear() {
	f.leds = [NumPixels][3]uint8{}
}
