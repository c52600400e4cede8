package remote

import (
	"net/rpc"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

// New dials a proxied device, so a desk machine can drive a panel attached
// to a Pi running cmd/serve.
func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) SetPixel(x, y int, r, g, b uint8) error {
	return c.rpc.Call("Service.SetPixel", SetPixelRequest{
		X: x, Y: y,
		R: r, G: g, B: b,
	}, nil)
}

func (c *Client) Pixel(x, y int) (r, g, b uint8, err error) {
	var resp PixelResponse
	if err := c.rpc.Call("Service.Pixel", PixelRequest{X: x, Y: y}, &resp); err != nil {
		return 0, 0, 0, err
	}
	return resp.R, resp.G, resp.B, nil
}

func (c *Client) Clear() {
	_ = c.rpc.Call("Service.Command", "clear", nil)
}

func (c *Client) SetRotation(rot frame.Rotation) error {
	return c.rpc.Call("Service.SetRotation", SetRotationRequest{
		Degrees: rot.Degrees(),
	}, nil)
}

func (c *Client) SetBrightness(level float64) error {
	return c.rpc.Call("Service.SetBrightness", SetBrightnessRequest{
		Level: level,
	}, nil)
}

func (c *Client) Display() error {
	return c.rpc.Call("Service.Command", "display", nil)
}

// Close releases the RPC connection; the proxied device stays open.
func (c *Client) Close() error {
	return c.rpc.Close()
}
