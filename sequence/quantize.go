package sequence

import (
	"image"
	"image/color"

	"gifmaker/palette"

	"golang.org/x/image/draw"
)

// Quantizer converts frames to paletted images for the GIF encoder.
type Quantizer struct {
	// Palette is shared by every frame. When nil each frame gets its own
	// palette built from its pixels.
	Palette color.Palette
	// Dither applies Floyd-Steinberg error diffusion. Ignored when Perceptual
	// is set.
	Dither bool
	// Perceptual picks the nearest palette entry in OKLab space instead of
	// RGB.
	Perceptual bool
}

func (q Quantizer) Quantize(img image.Image) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	pal := q.Palette
	if pal == nil {
		pal = palette.Build(img, palette.MaxColors)
	}
	dest := image.NewPaletted(dr, pal)

	switch {
	case q.Perceptual:
		palette.NewMatcher(pal).Remap(dest, dr, img, sr.Min)
	case q.Dither:
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
	default:
		draw.Draw(dest, dr, img, sr.Min, draw.Src)
	}

	return dest
}
