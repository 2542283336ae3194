package palette

import (
	"image"
	"image/color"
	"math"

	"gifmaker/okcolor"
)

// Matcher maps colors to the perceptually nearest palette entry in OKLab
// space. It caches lookups and is not safe for concurrent use.
type Matcher struct {
	pal   color.Palette
	lab   []okcolor.Lab
	cache map[color.RGBA64]uint8
}

func NewMatcher(pal color.Palette) *Matcher {
	m := &Matcher{
		pal:   pal,
		lab:   make([]okcolor.Lab, len(pal)),
		cache: make(map[color.RGBA64]uint8),
	}
	for i, c := range pal {
		m.lab[i] = okcolor.LabModel.Convert(c).(okcolor.Lab)
	}
	return m
}

func (m *Matcher) Palette() color.Palette {
	return m.pal
}

func (m *Matcher) Index(c color.Color) int {
	key := color.RGBA64Model.Convert(c).(color.RGBA64)
	if idx, ok := m.cache[key]; ok {
		return int(idx)
	}

	lc := okcolor.LabModel.Convert(key).(okcolor.Lab)
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range m.lab {
		sum := lc.Distance(v)
		if sum < bestSum {
			ret, bestSum = i, sum
			if sum == 0 {
				break
			}
		}
	}

	m.cache[key] = uint8(ret)
	return ret
}

// Remap fills r of dst with the nearest palette index of the matching src
// pixel, src being aligned so that sp maps to r.Min.
func (m *Matcher) Remap(dst *image.Paletted, r image.Rectangle, src image.Image, sp image.Point) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			dst.SetColorIndex(x, y, uint8(m.Index(c)))
		}
	}
}
