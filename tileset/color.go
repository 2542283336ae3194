package tileset

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

const DefaultBackground = "MAGENTA"

var namedColors = map[string]color.RGBA{
	"RED":     {0xFF, 0x00, 0x00, 0xFF},
	"GREEN":   {0x00, 0xFF, 0x00, 0xFF},
	"BLUE":    {0x00, 0x00, 0xFF, 0xFF},
	"WHITE":   {0xFF, 0xFF, 0xFF, 0xFF},
	"BLACK":   {0x00, 0x00, 0x00, 0xFF},
	"MAGENTA": {0xFF, 0x00, 0xFF, 0xFF},
}

// ColorNames lists the named background colors.
func ColorNames() []string {
	return []string{"RED", "GREEN", "BLUE", "WHITE", "BLACK", "MAGENTA"}
}

// ParseColor accepts a color name (any case), an "R,G,B" triple or a #RGB /
// #RRGGBB hex string. The result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToUpper(s)]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHexToColor(s)
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		channels := make([]int, len(parts))
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w %q: channel %d: %w", ErrInvalidColor, s, i, err)
			}
			channels[i] = v
		}
		return ColorFromChannels(channels...)
	}

	return color.RGBA{}, fmt.Errorf("%w %q, want one of %s, R,G,B or #RRGGBB", ErrInvalidColor, s,
		strings.Join(ColorNames(), ", "))
}

// ColorFromChannels builds an opaque color from exactly three 0-255 values.
func ColorFromChannels(channels ...int) (color.RGBA, error) {
	if len(channels) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: want 3 channels, got %d", ErrInvalidColor, len(channels))
	}
	for i, v := range channels {
		if v < 0 || v > 0xFF {
			return color.RGBA{}, fmt.Errorf("%w: channel %d out of range: %d", ErrInvalidColor, i, v)
		}
	}

	return color.RGBA{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2]), A: 0xFF}, nil
}

func parseHexToColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
		} else if n < 3 {
			return color.RGBA{}, fmt.Errorf("%w %q: insufficient fields: %d", ErrInvalidColor, s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
		} else if n < 3 {
			return color.RGBA{}, fmt.Errorf("%w %q: insufficient fields: %d", ErrInvalidColor, s, n)
		}
	default:
		return color.RGBA{}, fmt.Errorf("%w %q: should be #RGB or #RRGGBB", ErrInvalidColor, s)
	}

	return c, nil
}
