package virtual

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unicornhd/pkg/frame"
)

func TestDisplayRendersBuffer(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&buf, zap.NewNop())

	require.NoError(t, dev.SetPixel(0, 0, 255, 0, 0))
	require.NoError(t, dev.SetPixel(15, 15, 0, 255, 0))
	require.NoError(t, dev.Display())

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+frame.Height)
	assert.Equal(t, "Unicorn HAT HD:", lines[0])

	// Top-left cell is red, bottom-right is green, everything else black.
	assert.True(t, strings.HasPrefix(lines[1], "\x1b[38;2;255;0;0m*"))
	assert.True(t, strings.HasSuffix(lines[16], "\x1b[38;2;0;255;0m*\x1b[0m"))
	assert.Equal(t, frame.NumPixels-2, strings.Count(out, "\x1b[38;2;0;0;0m*"))
	assert.Equal(t, frame.NumPixels, strings.Count(out, "*"))
}

func TestDisplayIgnoresRotationAndBrightness(t *testing.T) {
	var plain, rotated bytes.Buffer

	dev := New(&plain, zap.NewNop())
	require.NoError(t, dev.SetPixel(3, 0, 10, 20, 30))
	require.NoError(t, dev.Display())

	dev2 := New(&rotated, zap.NewNop())
	require.NoError(t, dev2.SetPixel(3, 0, 10, 20, 30))
	require.NoError(t, dev2.SetRotation(frame.Rot180))
	require.NoError(t, dev2.SetBrightness(0.1))
	require.NoError(t, dev2.Display())

	// The emulation always renders in the default orientation with raw
	// channel values.
	assert.Equal(t, plain.String(), rotated.String())
}

func TestValidation(t *testing.T) {
	dev := New(&bytes.Buffer{}, zap.NewNop())

	assert.Error(t, dev.SetPixel(16, 0, 1, 1, 1))
	assert.Error(t, dev.SetRotation(frame.Rotation(-1)))
	assert.Error(t, dev.SetBrightness(2))

	_, _, _, err := dev.Pixel(0, 16)
	assert.Error(t, err)
}

type failWriter struct {
}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestDisplayWriterFailure(t *testing.T) {
	dev := New(failWriter{}, zap.NewNop())
	assert.Error(t, dev.Display())
}

func ExampleNew() {
	dev := New(&bytes.Buffer{}, zap.NewNop())
	defer dev.Close()

	_ = dev.SetPixel(0, 0, 255, 0, 0)
	if err := dev.Display(); err != nil {
		fmt.Println(err)
	}
}
