package remote

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unicornhd/pkg/device/virtual"
)

func newService() *Service {
	return &Service{dev: virtual.New(io.Discard, zap.NewNop())}
}

func TestServicePixelRoundTrip(t *testing.T) {
	svc := newService()

	require.NoError(t, svc.SetPixel(SetPixelRequest{X: 2, Y: 3, R: 9, G: 8, B: 7}, nil))

	var resp PixelResponse
	require.NoError(t, svc.Pixel(PixelRequest{X: 2, Y: 3}, &resp))
	assert.Equal(t, PixelResponse{R: 9, G: 8, B: 7}, resp)

	assert.Error(t, svc.SetPixel(SetPixelRequest{X: 16, Y: 0}, nil))
	assert.Error(t, svc.Pixel(PixelRequest{X: 0, Y: -1}, &resp))
}

func TestServiceCommands(t *testing.T) {
	svc := newService()

	require.NoError(t, svc.SetPixel(SetPixelRequest{X: 0, Y: 0, R: 1, G: 1, B: 1}, nil))
	require.NoError(t, svc.Command("clear", nil))

	var resp PixelResponse
	require.NoError(t, svc.Pixel(PixelRequest{X: 0, Y: 0}, &resp))
	assert.Equal(t, PixelResponse{}, resp)

	assert.NoError(t, svc.Command("display", nil))
	assert.Error(t, svc.Command("reboot", nil))
}

func TestServiceSettings(t *testing.T) {
	svc := newService()

	assert.NoError(t, svc.SetRotation(SetRotationRequest{Degrees: 180}, nil))
	assert.Error(t, svc.SetRotation(SetRotationRequest{Degrees: 45}, nil))

	assert.NoError(t, svc.SetBrightness(SetBrightnessRequest{Level: 0.3}, nil))
	assert.Error(t, svc.SetBrightness(SetBrightnessRequest{Level: 1.5}, nil))
}
