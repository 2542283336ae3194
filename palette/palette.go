package palette

import (
	"errors"
	"fmt"
	"image/color"
	stdpalette "image/color/palette"
	"os"
	"strings"
)

// MaxColors is the largest palette a GIF frame can reference.
const MaxColors = 256

var ErrUnknownPalette = errors.New("unknown palette")

var named = map[string]color.Palette{
	"plan9":   stdpalette.Plan9,
	"websafe": stdpalette.WebSafe,
	"bw":      {color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	"gray16":  gray16(),
	"vga16": {
		color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0xAA, 0xFF},
		color.RGBA{0x00, 0xAA, 0x00, 0xFF}, color.RGBA{0x00, 0xAA, 0xAA, 0xFF},
		color.RGBA{0xAA, 0x00, 0x00, 0xFF}, color.RGBA{0xAA, 0x00, 0xAA, 0xFF},
		color.RGBA{0xAA, 0x55, 0x00, 0xFF}, color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
		color.RGBA{0x55, 0x55, 0x55, 0xFF}, color.RGBA{0x55, 0x55, 0xFF, 0xFF},
		color.RGBA{0x55, 0xFF, 0x55, 0xFF}, color.RGBA{0x55, 0xFF, 0xFF, 0xFF},
		color.RGBA{0xFF, 0x55, 0x55, 0xFF}, color.RGBA{0xFF, 0x55, 0xFF, 0xFF},
		color.RGBA{0xFF, 0xFF, 0x55, 0xFF}, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	},
	"spectra6": {
		color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		color.RGBA{0xFF, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0xFF, 0x00, 0xFF},
		color.RGBA{0x00, 0x00, 0xFF, 0xFF}, color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
	},
}

func gray16() color.Palette {
	pal := make(color.Palette, 16)
	for i := range pal {
		pal[i] = color.RGBA{uint8(i * 17), uint8(i * 17), uint8(i * 17), 0xFF}
	}
	return pal
}

// Names lists the built-in palettes.
func Names() []string {
	return []string{"plan9", "websafe", "bw", "gray16", "vga16", "spectra6"}
}

// LoadPalette returns a built-in palette by name (case-insensitive) or reads
// every palette stored in a RIFF PAL file and concatenates them.
func LoadPalette(name string) (color.Palette, error) {
	if pal, ok := named[strings.ToLower(name)]; ok {
		return pal, nil
	}

	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w %q, want one of %s or a PAL file", ErrUnknownPalette, name,
				strings.Join(Names(), ", "))
		}
		return nil, fmt.Errorf("could not open palette file %q: %w", name, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette file %q: %w", name, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}

	switch {
	case len(res) == 0:
		return nil, fmt.Errorf("palette file %q has no colors", name)
	case len(res) > MaxColors:
		return nil, fmt.Errorf("palette file %q has %d colors, at most %d supported", name, len(res), MaxColors)
	}

	return res, nil
}
