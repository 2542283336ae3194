package sequence

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// writeFile encodes into a temporary file next to dest and renames it over
// dest once encoding and flushing succeeded.
func writeFile(dest string, encode func(io.Writer) error) (err error) {
	destDir, destName := filepath.Split(dest)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination for %q: %w", dest, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", dest, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
			}
		}
		if err != nil {
			os.Remove(outFile.Name())
		}
	}()

	w := bufio.NewWriter(outFile)
	if err = encode(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("could not write %q: %w", dest, err)
	}

	canRename = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
