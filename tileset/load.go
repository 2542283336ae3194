package tileset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"gifmaker/sequence"

	"golang.org/x/image/draw"
)

var (
	ErrNotImage    = errors.New("file is not an image")
	ErrIsDirectory = errors.New("path is a directory, should be an image file")
	ErrZeroFrames  = errors.New("frames count should be more than 0")
	ErrInvalidGrid = errors.New("invalid grid")
	ErrBadStart    = errors.New("start index should not be negative")
)

// Grid partitions a sprite sheet into Columns x Rows equally sized tiles.
type Grid struct {
	Columns int
	Rows    int
}

type Options struct {
	Grid       Grid
	Start      int
	Count      int
	Background string
}

// TileSize divides the sheet evenly, dropping remainder pixels.
func TileSize(sheet image.Point, g Grid) image.Point {
	return image.Pt(sheet.X/g.Columns, sheet.Y/g.Rows)
}

// CropRect returns the rectangle of tile index, tiles being numbered row by
// row from the top left one.
func CropRect(index, columns int, tile image.Point) image.Rectangle {
	origin := image.Pt(tile.X*(index%columns), tile.Y*(index/columns))
	return image.Rectangle{Min: origin, Max: origin.Add(tile)}
}

// HasTransparency reports whether img may hold non opaque pixels.
func HasTransparency(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// Flatten composites img over an opaque canvas of bg.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	dest := image.NewRGBA(b)
	draw.Draw(dest, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dest, b, img, b.Min, draw.Over)
	return dest
}

// Load cuts opts.Count consecutive tiles out of the sprite sheet at path,
// starting at tile opts.Start. Tiles reaching past the sheet keep zero pixels
// where the sheet has none.
func Load(path string, opts Options) (sequence.Frames, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrZeroFrames, opts.Count)
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return nil, err
	}
	if opts.Grid.Columns < 1 || opts.Grid.Rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, opts.Grid.Columns, opts.Grid.Rows)
	}
	if opts.Start < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStart, opts.Start)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrIsDirectory, path)
	}
	if !sequence.IsImage(path) {
		return nil, fmt.Errorf("%w: %q", ErrNotImage, path)
	}

	sheet, _, err := sequence.Decode(path)
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("file", path)

	if HasTransparency(sheet) {
		logger.Debug("flattening transparency", "background", bg)
		sheet = Flatten(sheet, bg)
	}

	sb := sheet.Bounds()
	tile := TileSize(sb.Size(), opts.Grid)
	if tile.X == 0 || tile.Y == 0 {
		return nil, fmt.Errorf("%w: %dx%d sheet is too small for a %dx%d grid", ErrInvalidGrid,
			sb.Dx(), sb.Dy(), opts.Grid.Columns, opts.Grid.Rows)
	}

	sheetRect := image.Rectangle{Max: sb.Size()}
	frames := make(sequence.Frames, 0, opts.Count)
	for index := opts.Start; index < opts.Start+opts.Count; index++ {
		r := CropRect(index, opts.Grid.Columns, tile)
		if !r.In(sheetRect) {
			logger.Warn("tile reaches past the sheet", "index", index, "rect", r)
		}
		frames = append(frames, crop(sheet, r))
	}

	logger.Info("frames loaded", "frames", len(frames), "width", tile.X, "height", tile.Y,
		"start", opts.Start)
	return frames, nil
}

func crop(sheet image.Image, r image.Rectangle) *image.RGBA {
	dest := image.NewRGBA(image.Rectangle{Max: r.Size()})
	draw.Draw(dest, dest.Bounds(), sheet, sheet.Bounds().Min.Add(r.Min), draw.Src)
	return dest
}
