package sequence

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Resize scales every frame to width pixels, keeping the aspect ratio of the
// first frame so the result stays uniform. Non-positive widths return the
// frames untouched.
func (f Frames) Resize(logger *slog.Logger, width int) Frames {
	if width <= 0 || len(f) == 0 {
		return f
	}

	size := f.Size()
	if size.X == width || size.X == 0 {
		return f
	}

	height := max(1, int(math.Round(float64(size.Y)*float64(width)/float64(size.X))))
	logger.Info("resizing", "from_width", size.X, "from_height", size.Y, "width", width, "height", height)

	destBounds := image.Rect(0, 0, width, height)
	res := make(Frames, len(f))
	for i, img := range f {
		dest := image.NewRGBA(destBounds)
		draw.CatmullRom.Scale(dest, destBounds, img, img.Bounds(), draw.Src, nil)
		res[i] = dest
	}

	return res
}
