package unicornhd

import (
	"time"

	"go.uber.org/zap"
)

func (u *UnicornHD) sendFrame(data []byte) error {
	var sent int
	var cost time.Duration

	start := time.Now()
	if n, err := u.spi.Write(data); err != nil {
		return err
	} else {
		sent = n
		cost = time.Since(start)
	}

	u.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", cost.String()),
	).Debug("transfer")

	return nil
}
