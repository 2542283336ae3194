package sequence

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCheckUniform(t *testing.T) {
	frames := Frames{solid(10, 10, color.Black), solid(10, 10, color.White)}
	if err := frames.Check(); err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if got := frames.Size(); got != image.Pt(10, 10) {
		t.Errorf("Size = %v, want (10,10)", got)
	}
}

func TestCheckEmpty(t *testing.T) {
	if err := (Frames{}).Check(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestCheckMismatch(t *testing.T) {
	frames := Frames{solid(10, 10, color.Black), solid(10, 10, color.Black), solid(12, 10, color.Black)}

	err := frames.Check("a.png", "b.png", "c.png")
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}

	var mismatch *SizeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %T, want *SizeMismatchError", err)
	}
	if mismatch.Expected != image.Pt(10, 10) || mismatch.Got != image.Pt(12, 10) {
		t.Errorf("mismatch = %+v", mismatch)
	}
	if mismatch.Index != 2 || mismatch.Name != "c.png" {
		t.Errorf("mismatch names frame %d %q, want 2 c.png", mismatch.Index, mismatch.Name)
	}
}

func TestIsImage(t *testing.T) {
	tests := map[string]bool{
		"a.png":        true,
		"B.PNG":        true,
		"c.jpg":        true,
		"d.JPEG":       true,
		"e.webp":       true,
		"f.tiff":       true,
		"notes.txt":    false,
		"png":          false,
		"archive.png~": false,
	}
	for name, want := range tests {
		if got := IsImage(name); got != want {
			t.Errorf("IsImage(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestResize(t *testing.T) {
	frames := Frames{solid(10, 20, color.White), solid(10, 20, color.Black)}

	got := frames.Resize(discardLogger(), 5)
	if len(got) != 2 {
		t.Fatalf("got %d frames, want 2", len(got))
	}
	for i, f := range got {
		if size := f.Bounds().Size(); size != image.Pt(5, 10) {
			t.Errorf("frame %d size = %v, want (5,10)", i, size)
		}
	}

	if same := frames.Resize(discardLogger(), -1); &same[0] != &frames[0] {
		t.Error("non-positive width should keep the frames")
	}
}

func TestQuantize(t *testing.T) {
	img := solid(4, 4, color.RGBA{0xFF, 0x00, 0x00, 0xFF})
	pal := color.Palette{color.Black, color.RGBA{0xFF, 0x00, 0x00, 0xFF}}

	for _, q := range []Quantizer{
		{Palette: pal},
		{Palette: pal, Dither: true},
		{Palette: pal, Perceptual: true},
	} {
		p := q.Quantize(img)
		if p.Bounds() != img.Bounds() {
			t.Fatalf("bounds = %v, want %v", p.Bounds(), img.Bounds())
		}
		for i, idx := range p.Pix {
			if idx != 1 {
				t.Errorf("%+v: pixel %d index = %d, want 1", q, i, idx)
				break
			}
		}
	}
}
