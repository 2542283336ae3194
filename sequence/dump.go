package sequence

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gifmaker/parallel"
)

const DefaultTempDir = "frames"

// Dump writes every frame as "<index>.png" into dir. The directory is
// created when missing; entries already inside it are removed first.
func (f Frames) Dump(dir string, worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if len(f) == 0 {
		return ErrEmpty
	}
	if dir == "" {
		dir = DefaultTempDir
	}

	if err := clearDir(dir); err != nil {
		return err
	}
	worker, wait = orInline(worker, wait)

	var (
		mu   sync.Mutex
		errs []error
	)
	for i, frame := range f {
		worker(func() {
			dest := filepath.Join(dir, strconv.Itoa(i)+".png")
			err := writeFile(dest, func(w io.Writer) error {
				enc := png.Encoder{
					CompressionLevel: png.BestSpeed,
					BufferPool:       pngPool,
				}
				return enc.Encode(w, frame)
			})
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("could not save frame %d: %w", i, err))
				mu.Unlock()
			}
		})
	}
	wait(false)

	if err := errors.Join(errs...); err != nil {
		return err
	}

	slog.Info("temp frames written", "dir", dir, "frames", len(f))
	return nil
}

func clearDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create temp folder %q: %w", dir, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("cannot stat temp folder %q: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("temp path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read temp folder %q: %w", dir, err)
	}
	for _, entry := range entries {
		name := filepath.Join(dir, entry.Name())
		if err := os.Remove(name); err != nil {
			return fmt.Errorf("unable to remove %q: %w", name, err)
		}
		slog.Debug("removed stale temp entry", "file", name)
	}

	return nil
}
