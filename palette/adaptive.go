package palette

import (
	"cmp"
	"image"
	"image/color"
	"slices"
)

// Adaptive names the per-frame palette built by Build.
const Adaptive = "adaptive"

// Low bits dropped per channel when a frame has more colors than fit.
const bucketShift = 3

type count struct {
	key           uint32
	r, g, b, a, n int
}

func pack(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func byPopularity(x, y *count) int {
	if c := cmp.Compare(y.n, x.n); c != 0 {
		return c
	}
	return cmp.Compare(x.key, y.key)
}

// Build returns at most n colors taken from img. An image with n colors or
// fewer gets exactly its own colors. Otherwise pixels are grouped into coarse
// buckets and the averages of the most popular buckets are kept.
func Build(img image.Image, n int) color.Palette {
	n = min(max(n, 1), MaxColors)
	b := img.Bounds()

	exact := make(map[uint32]*count)
	buckets := make(map[uint32]*count)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)

			if exact != nil {
				k := pack(c)
				if e, ok := exact[k]; ok {
					e.n++
				} else if len(exact) < n {
					exact[k] = &count{key: k, r: int(c.R), g: int(c.G), b: int(c.B), a: int(c.A), n: 1}
				} else {
					exact = nil
				}
			}

			k := pack(color.RGBA{c.R >> bucketShift, c.G >> bucketShift, c.B >> bucketShift, c.A >> bucketShift})
			e, ok := buckets[k]
			if !ok {
				e = &count{key: k}
				buckets[k] = e
			}
			e.r += int(c.R)
			e.g += int(c.G)
			e.b += int(c.B)
			e.a += int(c.A)
			e.n++
		}
	}

	src := exact
	if src == nil {
		src = buckets
	}
	counts := make([]*count, 0, len(src))
	for _, c := range src {
		counts = append(counts, c)
	}
	slices.SortFunc(counts, byPopularity)
	if len(counts) > n {
		counts = counts[:n]
	}

	pal := make(color.Palette, len(counts))
	for i, c := range counts {
		if exact != nil {
			pal[i] = color.RGBA{uint8(c.r), uint8(c.g), uint8(c.b), uint8(c.a)}
			continue
		}
		pal[i] = color.RGBA{uint8(c.r / c.n), uint8(c.g / c.n), uint8(c.b / c.n), uint8(c.a / c.n)}
	}
	if len(pal) == 0 {
		pal = color.Palette{color.RGBA{A: 0xFF}}
	}
	return pal
}
