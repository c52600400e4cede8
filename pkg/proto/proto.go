package proto

import (
	"unicornhd/pkg/frame"
)

// Control is the device contract shared by the hardware, virtual and remote
// variants. Callers stay agnostic of which one they hold.
//
// Implementations are synchronous and perform no internal locking; callers
// that mutate a device from several goroutines must serialize access.
type Control interface {
	// SetPixel stores an RGB triple at (x, y) in the device buffer. The
	// panel is not updated until Display is called. Out-of-range
	// coordinates return an error.
	SetPixel(x, y int, r, g, b uint8) error

	// Pixel returns the buffered value at (x, y), which may differ from
	// what the panel currently shows.
	Pixel(x, y int) (r, g, b uint8, err error)

	// Clear sets the whole buffer to black.
	Clear()

	// SetRotation selects the orientation applied when the buffer is
	// encoded. The virtual device accepts but ignores it.
	SetRotation(rot frame.Rotation) error

	// SetBrightness sets the encode-time channel scale, in [0, 1].
	SetBrightness(level float64) error

	// Display pushes the current buffer to the output. It blocks until
	// the transfer completes or fails, and is never retried internally.
	Display() error

	// Close releases the underlying output.
	Close() error
}
