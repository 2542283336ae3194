package preview

import (
	"image"
	"math"
	"time"
)

// Cycle selects which of n frames is on screen, advancing one frame per
// interval and wrapping around forever.
type Cycle struct {
	n        int
	interval time.Duration
}

func NewCycle(n int, interval time.Duration) Cycle {
	return Cycle{n: n, interval: interval}
}

func (c Cycle) Frame(elapsed time.Duration) int {
	if c.n <= 1 || c.interval <= 0 || elapsed < 0 {
		return 0
	}
	return int((elapsed / c.interval) % time.Duration(c.n))
}

// WindowSize scales size uniformly so its width becomes displayWidth.
func WindowSize(size image.Point, displayWidth int) (width, height int, scale float64) {
	if size.X <= 0 {
		return 0, 0, 0
	}
	scale = float64(displayWidth) / float64(size.X)
	return displayWidth, int(math.Round(float64(size.Y) * scale)), scale
}
