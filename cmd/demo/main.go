package main

import (
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"unicornhd/pkg/device/unicornhd"
	"unicornhd/pkg/device/virtual"
	"unicornhd/pkg/frame"
	"unicornhd/pkg/proto"
	"unicornhd/pkg/snapshot"
)

var spiName = flag.String("spi", "", "SPI port name, empty for the first available")
var useVirtual = flag.Bool("virtual", false, "render to the terminal instead of hardware")
var rotation = flag.Int("rotation", 0, "panel rotation in degrees")
var brightness = flag.Float64("brightness", 0.5, "brightness in [0, 1]")
var fps = flag.Int("fps", 30, "frames per second")
var snapshotDir = flag.String("snapshot-dir", "", "save every displayed frame as PNG into this dir")

func main() {
	flag.Parse()

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

	if *snapshotDir != "" {
		dev, err = snapshot.NewDir(dev, *snapshotDir, logger)
		if err != nil {
			log.Fatal(err)
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	start := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	for {
		select {
		case <-signals:
			logger.Info("shutting down")
			dev.Clear()
			if err := dev.Display(); err != nil {
				logger.With(zap.Error(err)).Info("final clear failed")
			}
			return
		case <-ticker.C:
			t := time.Since(start).Seconds()
			if err := drawRainbow(dev, t); err != nil {
				log.Fatal(err)
			}
			if err := dev.Display(); err != nil {
				logger.With(zap.Error(err)).Info("display failed")
			}
		}
	}
}

// drawRainbow paints a moving hue swirl across the panel.
func drawRainbow(dev proto.Control, t float64) error {
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			h := math.Mod(t/4+float64(x+y)/(frame.Width+frame.Height), 1)
			r, g, b := colorWheel(h)
			if err := dev.SetPixel(x, y, r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func colorWheel(h float64) (uint8, uint8, uint8) {
	h *= 6
	switch {
	case h < 1:
		return 255, uint8(255 * h), 0
	case h < 2:
		return uint8(255 * (2 - h)), 255, 0
	case h < 3:
		return 0, 255, uint8(255 * (h - 2))
	case h < 4:
		return 0, uint8(255 * (4 - h)), 255
	case h < 5:
		return uint8(255 * (h - 4)), 0, 255
	default:
		return 255, 0, uint8(255 * (6 - h))
	}
}
