package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"unicornhd/pkg/device/remote"
	"unicornhd/pkg/device/unicornhd"
	"unicornhd/pkg/proto"
)

var spiName = flag.String("spi", "", "SPI port name")
var listen = flag.String("listen", ":9123", "listen addr")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*proto.SPI, *http.Server, *zap.Logger) {
				logger, _ := zap.NewDevelopment()
				return proto.NewSPI(*spiName),
					&http.Server{Addr: *listen},
					logger
			},
			unicornhd.New,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
