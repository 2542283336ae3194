package sequence

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"gifmaker/palette"
	"gifmaker/parallel"
)

// PreviewFunc shows frames in a window displayWidth pixels wide, advancing
// one frame per interval until the user quits.
type PreviewFunc func(frames []image.Image, interval time.Duration, displayWidth int) error

// Params are the output options shared by every source command.
type Params struct {
	Duration     float64 `short:"d" name:"duration" help:"Total animation duration in seconds" default:"1.0"`
	PreviewWidth int     `short:"p" name:"preview_width" help:"Open a preview window this many pixels wide, -1 disables it" default:"-1"`
	OutputName   string  `short:"o" name:"output_name" help:"Output file name, .gif is appended when missing" default:"out.gif"`
	TempSave     bool    `short:"t" name:"temp_save" help:"Also save every frame as a numbered PNG into the temp folder" default:"false"`
	TempDir      string  `name:"temp_dir" help:"Temp folder for saved frames, emptied before saving" default:"frames"`
	Width        int     `short:"w" name:"width" help:"Resize frames to this width keeping the aspect ratio, -1 keeps the source size" default:"-1"`

	Palette string `help:"GIF palette: adaptive builds one per frame, or a fixed one (plan9, websafe, bw, gray16, vga16, spectra6) or PAL file in RIFF format" default:"adaptive" group:"palette"`
	Dither  bool   `help:"Apply dithering" default:"false" group:"palette"`
	Match   string `help:"Nearest color matching" enum:"rgb,oklab" default:"rgb" group:"palette"`

	// Colors is the fixed palette loaded by Validate, nil for adaptive.
	Colors color.Palette `kong:"-"`
}

func (p *Params) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("invalid duration: %g", p.Duration)
	}
	if p.OutputName == "" {
		return fmt.Errorf("empty output name")
	}
	if p.Dither && p.Match == "oklab" {
		return fmt.Errorf("dithering is only supported with rgb color matching")
	}

	if strings.EqualFold(p.Palette, palette.Adaptive) {
		p.Colors = nil
		return nil
	}
	pal, err := palette.LoadPalette(p.Palette)
	if err != nil {
		return err
	}
	p.Colors = pal

	return nil
}

func (p *Params) Quantizer() Quantizer {
	return Quantizer{
		Palette:    p.Colors,
		Dither:     p.Dither,
		Perceptual: p.Match == "oklab",
	}
}

// Emit runs the output stage for a validated frame sequence: optional resize,
// optional temp dump, the GIF file, then the optional preview.
func (p *Params) Emit(frames Frames, worker parallel.WorkerFunc, wait parallel.WaitFunc, show PreviewFunc) error {
	if err := frames.Check(); err != nil {
		return err
	}
	worker, wait = orInline(worker, wait)

	frames = frames.Resize(slog.Default(), p.Width)

	if p.TempSave {
		if err := frames.Dump(p.TempDir, worker, wait); err != nil {
			return err
		}
	}

	asm := Assembler{
		Quantizer: p.Quantizer(),
		Worker:    worker,
		Wait:      wait,
	}
	if err := asm.WriteFile(OutputName(p.OutputName), frames, p.Duration); err != nil {
		return err
	}
	wait(true)

	if p.PreviewWidth > 0 && show != nil {
		interval := time.Duration(p.Duration / float64(len(frames)) * float64(time.Second))
		return show(frames, interval, p.PreviewWidth)
	}

	return nil
}
