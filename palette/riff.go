package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadFrom reads every palette chunk of a RIFF PAL stream, nested lists
// included, in stream order.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readPalettes(rd, string(formType[:]))
}

func readPalettes(r *riff.Reader, ident string) ([]color.Palette, error) {
	var res []color.Palette

	for {
		id, size, data, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, len(res), err)
		}

		switch id {
		case riff.LIST:
			listType, list, lerr := riff.NewListReader(size, data)
			if lerr != nil {
				return res, fmt.Errorf("could not read list from chunk %q#%d: %w", ident, len(res), lerr)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q#%d unsupported type: %s", ident, len(res), string(listType[:]))
			}

			listRes, lerr := readPalettes(list, fmt.Sprintf("%s%d.%s", ident, len(res), listType[:]))
			res = append(res, listRes...)
			if lerr != nil {
				return res, lerr
			}
		case dataType:
			pal, err := readPalette(data, fmt.Sprintf("%s%d", ident, len(res)))
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, len(res), string(id[:]))
		}
	}

	return res, nil
}

func readPalette(r io.Reader, ident string) (color.Palette, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("could not read header of chunk %s: %w", ident, err)
	}

	if ver := binary.LittleEndian.Uint16(hdr[:2]); ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %#04x", ident, ver)
	}

	count := int(binary.LittleEndian.Uint16(hdr[2:]))
	buf := make([]byte, 4*count)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read %d colors from chunk %s: %w", count, ident, err)
	}

	res := make(color.Palette, count)
	for i := range count {
		res[i] = color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: 0xFF}
	}

	return res, nil
}

// WriteTo stores pals as one RIFF PAL stream with a data chunk per palette.
func WriteTo(w io.Writer, pals []color.Palette) (int64, error) {
	size := 4
	for _, pal := range pals {
		size += 4 + 4 + 4 + len(pal)*4 // chunk id + chunk size + palVersion + palNumEntries + 4 bytes/color
	}

	hdr := append(riffType[:], binary.LittleEndian.AppendUint32(nil, uint32(size))...)
	hdr = append(hdr, palType[:]...)
	if err := writeBytes(w, hdr); err != nil {
		return 0, fmt.Errorf("could not write RIFF header: %w", err)
	}

	var count int64
	for i, pal := range pals {
		if err := writePalette(w, pal); err != nil {
			return count, fmt.Errorf("could not write chunk %d: %w", i, err)
		}
		count += int64(len(pal))
	}

	return count, nil
}

func writePalette(w io.Writer, pal color.Palette) error {
	buf := make([]byte, 0, 12+4*len(pal))
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(4+4*len(pal)))
	buf = binary.LittleEndian.AppendUint16(buf, palVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))

	for _, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		buf = append(buf, c.R, c.G, c.B, 0x00)
	}

	return writeBytes(w, buf)
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
