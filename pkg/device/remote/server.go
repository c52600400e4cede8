package remote

import (
	"context"
	"log"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
)

// Proxy registers dev on the RPC surface and serves it over HTTP for the
// application's lifetime.
func Proxy(dev proto.Control, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "clear":
		s.dev.Clear()
		return nil
	case "display":
		return s.dev.Display()
	}

	return errors.New("unknown command")
}

func (s *Service) SetPixel(req SetPixelRequest, _ *EmptyResponse) error {
	return s.dev.SetPixel(req.X, req.Y, req.R, req.G, req.B)
}

func (s *Service) Pixel(req PixelRequest, resp *PixelResponse) error {
	r, g, b, err := s.dev.Pixel(req.X, req.Y)
	if err != nil {
		return err
	}
	resp.R, resp.G, resp.B = r, g, b
	return nil
}

func (s *Service) SetRotation(req SetRotationRequest, _ *EmptyResponse) error {
	rot, err := frame.ParseRotation(req.Degrees)
	if err != nil {
		return err
	}
	return s.dev.SetRotation(rot)
}

func (s *Service) SetBrightness(req SetBrightnessRequest, _ *EmptyResponse) error {
	return s.dev.SetBrightness(req.Level)
}
