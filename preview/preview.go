// Package preview plays a frame sequence in a resizable window until the
// window is closed or Escape is pressed.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrNoFrames = errors.New("nothing to preview")

type game struct {
	frames  []*ebiten.Image
	cycle   Cycle
	start   time.Time
	current int
	scale   float64
	width   int
	height  int
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.current = g.cycle.Frame(time.Since(g.start))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.frames[g.current], op)
}

func (g *game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run blocks on the calling goroutine, which must be the main one, showing
// frames at interval per frame in a window displayWidth pixels wide.
func Run(frames []image.Image, interval time.Duration, displayWidth int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	width, height, scale := WindowSize(frames[0].Bounds().Size(), displayWidth)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	g := &game{
		frames: make([]*ebiten.Image, len(frames)),
		cycle:  NewCycle(len(frames), interval),
		scale:  scale,
		width:  width,
		height: height,
	}
	for i, img := range frames {
		g.frames[i] = ebiten.NewImageFromImage(img)
	}

	ebiten.SetWindowTitle("gifmaker preview")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	slog.Info("preview started", "width", width, "height", height, "interval", interval)
	g.start = time.Now()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("preview failed: %w", err)
	}
	slog.Info("preview closed")

	return nil
}
