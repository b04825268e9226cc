package contour

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ReadImage decodes the image at path into an RGB buffer. A trailing .zst
// extension transparently unwraps a zstd stream; the inner extension selects
// the format. PPM (binary P6) is handled natively, everything else goes
// through the stdlib image registry.
func ReadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	if strings.EqualFold(filepath.Ext(name), ".zst") {
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	var img *Image
	if strings.EqualFold(filepath.Ext(name), ".ppm") {
		img, err = decodePPM(bufio.NewReader(r))
	} else {
		img, err = decodeStd(r)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

// WriteImage encodes img to path. The extension selects the format (.ppm,
// .png or .bmp); a trailing .zst wraps the stream in zstd.
func WriteImage(img *Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	name := path
	var zenc *zstd.Encoder
	if strings.EqualFold(filepath.Ext(name), ".zst") {
		zenc, err = zstd.NewWriter(f, zstd.WithEncoderConcurrency(1))
		if err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		w = zenc
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".ppm":
		err = encodePPM(w, img)
	case ".png":
		err = png.Encode(w, toNRGBA(img))
	case ".bmp":
		err = bmp.Encode(w, toNRGBA(img))
	default:
		err = fmt.Errorf("unsupported output format %q", filepath.Ext(name))
	}
	if zenc != nil {
		if cerr := zenc.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func decodeStd(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			cr, cg, cb, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			img.Set(x, y, Pixel{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)})
		}
	}
	return img, nil
}

func toNRGBA(img *Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			p := img.At(x, y)
			o := dst.PixOffset(x, y)
			dst.Pix[o+0] = p.R
			dst.Pix[o+1] = p.G
			dst.Pix[o+2] = p.B
			dst.Pix[o+3] = 255
		}
	}
	return dst
}

func decodePPM(r *bufio.Reader) (*Image, error) {
	magic, err := ppmToken(r)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("not a binary PPM (magic %q)", magic)
	}
	w, err := ppmInt(r)
	if err != nil {
		return nil, err
	}
	h, err := ppmInt(r)
	if err != nil {
		return nil, err
	}
	maxval, err := ppmInt(r)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid PPM dimensions %dx%d", w, h)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("unsupported PPM maxval %d", maxval)
	}

	buf := make([]byte, 3*w*h)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("truncated PPM pixel data: %w", err)
	}
	img := NewImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = Pixel{buf[3*i], buf[3*i+1], buf[3*i+2]}
	}
	return img, nil
}

// ppmToken skips whitespace and # comments, then reads one header token. The
// single whitespace byte terminating the token is consumed, which is exactly
// the delimiter the format puts between the maxval and the pixel data.
func ppmToken(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", fmt.Errorf("short PPM header: %w", err)
		}
		switch {
		case c == '#' && sb.Len() == 0:
			if _, err := r.ReadString('\n'); err != nil {
				return "", fmt.Errorf("short PPM header: %w", err)
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func ppmInt(r *bufio.Reader) (int, error) {
	tok, err := ppmToken(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad PPM header field %q", tok)
	}
	return n, nil
}

func encodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.W, img.H); err != nil {
		return err
	}
	buf := make([]byte, 3*len(img.Pix))
	for i, p := range img.Pix {
		buf[3*i+0] = p.R
		buf[3*i+1] = p.G
		buf[3*i+2] = p.B
	}
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}
