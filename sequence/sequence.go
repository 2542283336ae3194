// Package sequence holds the ordered, uniformly sized frames a run produces
// and everything that consumes them: the GIF assembler, the temp frame dump
// and the output pipeline shared by every source command.
package sequence

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrEmpty        = errors.New("no frames")
	ErrSizeMismatch = errors.New("image sizes are not equal")
)

// Frames is an ordered list of images sharing the same width and height.
type Frames []image.Image

// SizeMismatchError reports a frame whose size differs from the first one.
type SizeMismatchError struct {
	Expected image.Point
	Got      image.Point
	Index    int
	Name     string
}

func (e *SizeMismatchError) Error() string {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("frame %d", e.Index)
	}
	return fmt.Sprintf("%s: %s is %dx%d, expected first image size %dx%d", ErrSizeMismatch, name,
		e.Got.X, e.Got.Y, e.Expected.X, e.Expected.Y)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// Size returns the common frame size, or the zero point for an empty list.
func (f Frames) Size() image.Point {
	if len(f) == 0 {
		return image.Point{}
	}
	return f[0].Bounds().Size()
}

// Check verifies every frame matches the size of the first one. names, when
// given, label the frames in the returned error.
func (f Frames) Check(names ...string) error {
	if len(f) == 0 {
		return ErrEmpty
	}

	size := f.Size()
	for i, frame := range f[1:] {
		if got := frame.Bounds().Size(); got != size {
			err := &SizeMismatchError{Expected: size, Got: got, Index: i + 1}
			if i+1 < len(names) {
				err.Name = names[i+1]
			}
			return err
		}
	}

	return nil
}
