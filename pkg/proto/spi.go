package proto

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Options configures the SPI connection. The defaults match what the panel
// firmware expects.
type Options struct {
	// Speed is the bus clock. The Unicorn HAT HD runs at 9 MHz.
	Speed physic.Frequency
}

// NewSPI returns a bus handle for the named SPI port. The name is resolved
// by spireg on Open; the empty string picks the first available port
// (typically /dev/spidev0.0 on a Raspberry Pi).
func NewSPI(name string) *SPI {
	return &SPI{name: name}
}

// NewSPIFromPort returns a bus handle over an already-opened port, skipping
// host initialization and port registry lookup. Used by tests and callers
// that manage ports themselves.
func NewSPIFromPort(port spi.Port) *SPI {
	return &SPI{port: port}
}

// SPI is the bus handle owned by a hardware device for its lifetime:
// open once, write frames, close on release.
type SPI struct {
	name      string
	port      spi.Port
	conn      spi.Conn
	maxTxSize int
}

// Open connects to the port. Mode 0, 8 bits per word.
func (s *SPI) Open(opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	speed := opts.Speed
	if speed == 0 {
		speed = 9 * physic.MegaHertz
	}

	if s.port == nil {
		if _, err := host.Init(); err != nil {
			return errors.Wrap(err, "host init")
		}
		port, err := spireg.Open(s.name)
		if err != nil {
			return errors.Wrapf(err, "open SPI port %q", s.name)
		}
		s.port = port
	}

	c, err := s.port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return errors.Wrap(err, "connect SPI port")
	}
	s.conn = c

	// Some ports cap the transfer size; frames larger than the cap are
	// split on Write.
	if limits, ok := c.(conn.Limits); ok {
		s.maxTxSize = limits.MaxTxSize()
	}

	return nil
}

// Close releases the port if it owns a closeable one.
func (s *SPI) Close() error {
	s.conn = nil
	if c, ok := s.port.(spi.PortCloser); ok {
		return c.Close()
	}
	return nil
}

// Write sends p over the bus. The write is a single transaction unless the
// port enforces a maximum transfer size, in which case p is split on byte
// boundaries and sent in order. A short write reports how much was sent.
func (s *SPI) Write(p []byte) (int, error) {
	if s.conn == nil {
		return 0, errors.New("SPI port not open")
	}

	var sent int
	for len(p) > 0 {
		chunk := p
		if s.maxTxSize > 0 && len(chunk) > s.maxTxSize {
			chunk = p[:s.maxTxSize]
		}
		if err := s.conn.Tx(chunk, nil); err != nil {
			return sent, errors.Wrap(err, "spi write")
		}
		sent += len(chunk)
		p = p[len(chunk):]
	}

	return sent, nil
}
