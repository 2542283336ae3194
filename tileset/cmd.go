package tileset

import (
	"fmt"
	"strconv"
	"strings"

	"gifmaker/parallel"
	"gifmaker/sequence"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Path        string   `arg:"" help:"Tileset image file"`
	Gridsize    GridFlag `short:"g" name:"gridsize" help:"Grid columns and rows, as C R or C,R" placeholder:"C R" default:"2,2"`
	StartIndex  int      `short:"s" name:"start_index" help:"First tile, counted row by row from the top left" default:"0"`
	FramesCount int      `short:"f" name:"frames_count" help:"Number of tiles to use" default:"4"`
	BgColor     string   `short:"b" name:"bg_color" help:"Background replacing transparency: RED, GREEN, BLUE, WHITE, BLACK, MAGENTA, R,G,B or #RRGGBB" default:"MAGENTA"`
	sequence.Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.FramesCount < 1 {
		return fmt.Errorf("%w: %d", ErrZeroFrames, c.FramesCount)
	}
	if _, err := ParseColor(c.BgColor); err != nil {
		return err
	}
	if c.Gridsize.Columns < 1 || c.Gridsize.Rows < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Gridsize.Columns, c.Gridsize.Rows)
	}
	if c.StartIndex < 0 {
		return fmt.Errorf("%w: %d", ErrBadStart, c.StartIndex)
	}

	return c.Params.Validate()
}

func (c *CLICmd) Options() Options {
	return Options{
		Grid:       Grid(c.Gridsize),
		Start:      c.StartIndex,
		Count:      c.FramesCount,
		Background: c.BgColor,
	}
}

// GridFlag reads a grid from two arguments, "-g 3 2", or from one "3,2"
// value as given by defaults and config files.
type GridFlag Grid

func (g *GridFlag) Decode(ctx *kong.DecodeContext) error {
	var cols, rows string
	if err := ctx.Scan.PopValueInto("columns", &cols); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}
	if c, r, ok := strings.Cut(cols, ","); ok {
		cols, rows = c, r
	} else if err := ctx.Scan.PopValueInto("rows", &rows); err != nil {
		return fmt.Errorf("%w: want columns and rows: %w", ErrInvalidGrid, err)
	}

	c, err := strconv.Atoi(strings.TrimSpace(cols))
	if err != nil {
		return fmt.Errorf("%w: columns %q", ErrInvalidGrid, cols)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil {
		return fmt.Errorf("%w: rows %q", ErrInvalidGrid, rows)
	}

	*g = GridFlag{Columns: c, Rows: r}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, show sequence.PreviewFunc) error {
	frames, err := Load(c.Path, c.Options())
	if err != nil {
		return err
	}

	return c.Emit(frames, worker, wait, show)
}
