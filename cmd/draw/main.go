package main

import (
	"log"
	"os"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"unicornhd/pkg/device/unicornhd"
	"unicornhd/pkg/device/virtual"
	"unicornhd/pkg/frame"
	"unicornhd/pkg/mixer"
	"unicornhd/pkg/proto"
)

var spiName = flag.String("spi", "", "SPI port name, empty for the first available")
var useVirtual = flag.Bool("virtual", false, "render to the terminal instead of hardware")
var rotation = flag.Int("rotation", 0, "panel rotation in degrees")
var brightness = flag.Float64("brightness", 0.5, "brightness in [0, 1]")
var effect = flag.String("effect", "", "transition effect: wipe, dissolve")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: draw [flags] <image>")
	}

	logger, _ := zap.NewDevelopment()

	var dev proto.Control
	var devErr error

	if *useVirtual {
		dev = virtual.New(os.Stdout, logger)
	} else {
		dev, devErr = unicornhd.New(proto.NewSPI(*spiName), logger)
	}
	if devErr != nil {
		log.Fatal(devErr)
	}
	defer dev.Close()

	rot, err := frame.ParseRotation(*rotation)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.SetRotation(rot); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetBrightness(*brightness); err != nil {
		log.Fatal(err)
	}

	img, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var opts []mixer.Option
	switch *effect {
	case "wipe":
		opts = append(opts, mixer.WithEffect(mixer.EffectWipe()))
	case "dissolve":
		opts = append(opts, mixer.WithEffect(mixer.EffectDissolve()))
	case "":
	default:
		log.Fatalf("unknown effect %q", *effect)
	}

	if err := mixer.NewDrawer(dev, opts...).Canvas(img); err != nil {
		log.Fatal(err)
	}
}
