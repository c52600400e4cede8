package unicornhd

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

func newRecorded(t *testing.T) (*bytes.Buffer, proto.Control) {
	t.Helper()
	buf := &bytes.Buffer{}
	dev, err := New(proto.NewSPIFromPort(spitest.NewRecordRaw(buf)), zap.NewNop())
	require.NoError(t, err)
	return buf, dev
}

func TestDisplayWritesWireFrame(t *testing.T) {
	buf, dev := newRecorded(t)

	require.NoError(t, dev.SetPixel(0, 0, 255, 0, 0))
	require.NoError(t, dev.SetPixel(15, 15, 0, 255, 0))
	require.NoError(t, dev.Display())

	data := buf.Bytes()
	require.Len(t, data, frame.EncodedLen)
	assert.Equal(t, byte(frame.SOF), data[0])
	assert.Equal(t, []byte{255, 0, 0}, data[1:4])
	assert.Equal(t, []byte{0, 255, 0}, data[len(data)-3:])

	for i, v := range data[4 : len(data)-3] {
		require.Equal(t, byte(0), v, "payload byte %d", i)
	}
}

func TestDisplayAppliesRotationAndBrightness(t *testing.T) {
	buf, dev := newRecorded(t)

	require.NoError(t, dev.SetPixel(0, 0, 200, 100, 50))
	require.NoError(t, dev.SetRotation(frame.Rot180))
	require.NoError(t, dev.SetBrightness(0.5))
	require.NoError(t, dev.Display())

	data := buf.Bytes()
	require.Len(t, data, frame.EncodedLen)
	// Under a half turn the top-left cell is the last payload cell.
	assert.Equal(t, []byte{100, 50, 25}, data[len(data)-3:])
	assert.Equal(t, []byte{0, 0, 0}, data[1:4])

	// The stored buffer stays unscaled and unrotated.
	r, g, b, err := dev.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint8{200, 100, 50}, []uint8{r, g, b})
}

func TestDisplayConsecutiveFrames(t *testing.T) {
	buf, dev := newRecorded(t)

	require.NoError(t, dev.Display())
	require.NoError(t, dev.Display())

	// Each call is one independent full frame on the wire.
	assert.Equal(t, 2*frame.EncodedLen, buf.Len())
}

func TestSetBrightnessValidation(t *testing.T) {
	_, dev := newRecorded(t)

	assert.Error(t, dev.SetBrightness(-0.1))
	assert.Error(t, dev.SetBrightness(1.1))
	assert.NoError(t, dev.SetBrightness(0))
	assert.NoError(t, dev.SetBrightness(1))
}

func TestSetRotationValidation(t *testing.T) {
	_, dev := newRecorded(t)

	assert.Error(t, dev.SetRotation(frame.Rotation(7)))
	assert.NoError(t, dev.SetRotation(frame.Rot270))
}

type failConn struct {
}

func (failConn) String() string                 { return "failconn" }
func (failConn) Halt() error                    { return nil }
func (failConn) Tx(w, r []byte) error           { return errors.New("io error") }
func (failConn) Duplex() conn.Duplex            { return conn.Full }
func (failConn) TxPackets(p []spi.Packet) error { return errors.New("io error") }

type failPort struct {
}

func (failPort) String() string { return "failport" }
func (failPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	return failConn{}, nil
}

func TestDisplayWriteFailure(t *testing.T) {
	dev, err := New(proto.NewSPIFromPort(failPort{}), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, dev.SetPixel(2, 3, 9, 8, 7))
	assert.Error(t, dev.Display())

	// A transport failure must not disturb driver state.
	r, g, b, err := dev.Pixel(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{9, 8, 7}, []uint8{r, g, b})
}
