package sequence

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"log/slog"
	"strings"
	"time"

	"gifmaker/parallel"
)

// OutputName appends the .gif suffix when name lacks it, ignoring case.
func OutputName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".gif") {
		return name
	}
	return name + ".gif"
}

// FrameDelay is the display time of each of n frames sharing duration
// seconds, truncated to whole milliseconds.
func FrameDelay(duration float64, n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(int64(duration*1000/float64(n))) * time.Millisecond
}

// Assembler writes a frame sequence as one endlessly looping GIF. Frames
// are quantized through the worker pool; their order is preserved.
type Assembler struct {
	Quantizer Quantizer
	Worker    parallel.WorkerFunc
	Wait      parallel.WaitFunc
}

func (a Assembler) Encode(w io.Writer, frames Frames, duration float64) error {
	if len(frames) == 0 {
		return ErrEmpty
	}

	worker, wait := orInline(a.Worker, a.Wait)

	// GIF delays are expressed in hundredths of a second.
	delay := int(FrameDelay(duration, len(frames)).Milliseconds() / 10)

	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i, frame := range frames {
		g.Delay[i] = delay
		worker(func() {
			g.Image[i] = a.Quantizer.Quantize(frame)
		})
	}
	wait(false)

	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("could not encode GIF: %w", err)
	}
	return nil
}

// WriteFile encodes frames into the GIF file at path.
func (a Assembler) WriteFile(path string, frames Frames, duration float64) error {
	err := writeFile(path, func(w io.Writer) error {
		return a.Encode(w, frames, duration)
	})
	if err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}

	slog.Info("gif written", "file", path, "frames", len(frames),
		"delay", FrameDelay(duration, len(frames)))
	return nil
}

func orInline(worker parallel.WorkerFunc, wait parallel.WaitFunc) (parallel.WorkerFunc, parallel.WaitFunc) {
	if worker == nil {
		worker = func(f func()) { f() }
	}
	if wait == nil {
		wait = func(bool) {}
	}
	return worker, wait
}
