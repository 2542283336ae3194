package sequence

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gifmaker/palette"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutputName(t *testing.T) {
	tests := map[string]string{
		"out.gif":  "out.gif",
		"OUT.GIF":  "OUT.GIF",
		"anim":     "anim.gif",
		"anim.png": "anim.png.gif",
		"mygif":    "mygif.gif",
	}
	for in, want := range tests {
		if got := OutputName(in); got != want {
			t.Errorf("OutputName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFrameDelay(t *testing.T) {
	tests := []struct {
		duration float64
		n        int
		want     time.Duration
	}{
		{2.0, 4, 500 * time.Millisecond},
		{1.0, 3, 333 * time.Millisecond},
		{1.0, 4, 250 * time.Millisecond},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		if got := FrameDelay(tt.duration, tt.n); got != tt.want {
			t.Errorf("FrameDelay(%g, %d) = %s, want %s", tt.duration, tt.n, got, tt.want)
		}
	}
}

func TestAssemblerWriteFile(t *testing.T) {
	frames := Frames{
		solid(10, 10, color.RGBA{0xFF, 0x00, 0x00, 0xFF}),
		solid(10, 10, color.RGBA{0x00, 0xFF, 0x00, 0xFF}),
		solid(10, 10, color.RGBA{0x00, 0x00, 0xFF, 0xFF}),
		solid(10, 10, color.White),
	}
	pal, err := palette.LoadPalette("plan9")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	asm := Assembler{Quantizer: Quantizer{Palette: pal}}
	if err := asm.WriteFile(path, frames, 2.0); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll error: %v", err)
	}
	if len(g.Image) != 4 {
		t.Fatalf("got %d frames, want 4", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 50 {
			t.Errorf("frame %d delay = %d, want 50 (500ms)", i, d)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (forever)", g.LoopCount)
	}
	if r, gr, _, _ := g.Image[0].At(0, 0).RGBA(); r>>8 < 0xC0 || gr>>8 > 0x40 {
		t.Errorf("first frame should stay red, got r=%#x g=%#x", r>>8, gr>>8)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("destination folder has %d entries, want only the gif", len(entries))
	}
}

func TestAssemblerEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Assembler{}).Encode(&buf, nil, 1); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}
