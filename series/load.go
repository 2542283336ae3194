package series

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gifmaker/sequence"
)

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrNoImages     = errors.New("no images in folder")
)

// Load decodes every image file directly inside dir, in directory listing
// order, and checks they all share the size of the first one.
func Load(dir string) (sequence.Frames, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotDirectory, dir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, dir)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read folder %q: %w", dir, err)
	}

	var (
		frames sequence.Frames
		names  []string
	)
	for _, file := range files {
		if file.IsDir() || !sequence.IsImage(file.Name()) {
			continue
		}

		name := filepath.Join(dir, file.Name())
		img, format, err := sequence.Decode(name)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded image", "file", name, "format", format, "size", img.Bounds().Size())

		frames = append(frames, img)
		names = append(names, name)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoImages, dir)
	}
	if err := frames.Check(names...); err != nil {
		return nil, err
	}

	size := frames.Size()
	slog.Info("frames loaded", "dir", dir, "frames", len(frames), "width", size.X, "height", size.Y)
	return frames, nil
}
