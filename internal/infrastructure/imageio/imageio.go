// Package imageio converts between encoded image files and entity.RasterImage.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
)

// Format is an output image format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	WebP Format = "webp"
)

// DefaultQuality is used for lossy formats when no quality is given.
const DefaultQuality = 90

// Extensions accepted by the file pickers.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp"}

// Decode reads an encoded image and returns it as an RGBA raster.
// Malformed data is reported as an invalid input error.
func Decode(r io.Reader) (entity.RasterImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return entity.RasterImage{}, entity.NewInvalidInput("decode image: %v", err)
	}
	return FromImage(img)
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (entity.RasterImage, error) {
	if len(data) == 0 {
		return entity.RasterImage{}, entity.NewInvalidInput("no image data")
	}
	return Decode(bytes.NewReader(data))
}

// Open loads an image file from disk.
func Open(path string) (entity.RasterImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.RasterImage{}, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// FromImage copies any image.Image into a tightly packed RGBA raster.
func FromImage(img image.Image) (entity.RasterImage, error) {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(pix[y*w*4:(y+1)*w*4], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+w*4])
	}
	return entity.NewRasterImage(w, h, entity.OrderRGBA, pix)
}

// ToImage converts a raster of any supported channel order to *image.NRGBA.
func ToImage(r entity.RasterImage) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	ch := r.Channels()
	red := r.Order.RedFirst()

	for i, off := 0, 0; i < len(out.Pix); i, off = i+4, off+ch {
		if red {
			out.Pix[i], out.Pix[i+2] = r.Pix[off], r.Pix[off+2]
		} else {
			out.Pix[i], out.Pix[i+2] = r.Pix[off+2], r.Pix[off]
		}
		out.Pix[i+1] = r.Pix[off+1]
		out.Pix[i+3] = 255
		if ch == 4 {
			out.Pix[i+3] = r.Pix[off+3]
		}
	}
	return out
}

// Encode writes the raster in the given format.
func Encode(w io.Writer, r entity.RasterImage, format Format, quality int) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	img := ToImage(r)
	switch format {
	case WebP:
		return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	case PNG:
		return imaging.Encode(w, img, imaging.PNG)
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case GIF:
		return imaging.Encode(w, img, imaging.GIF)
	case BMP:
		return imaging.Encode(w, img, imaging.BMP)
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// EncodePNG is a shortcut used by presenters that send images over the wire.
func EncodePNG(r entity.RasterImage) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r, PNG, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the raster to path, picking the format from the extension.
func Save(path string, r entity.RasterImage, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Encode(f, r, format, quality); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return WebP, nil
	}

	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", fmt.Errorf("unsupported output format: %q", ext)
	}
	switch f {
	case imaging.PNG:
		return PNG, nil
	case imaging.JPEG:
		return JPEG, nil
	case imaging.GIF:
		return GIF, nil
	case imaging.BMP:
		return BMP, nil
	}
	return "", fmt.Errorf("unsupported output format: %q", ext)
}

// IsImageFile reports whether the file name has a supported image extension.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Codec adapts the package functions to port.ImageCodec.
type Codec struct{}

// NewCodec creates a codec producing PNG output.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode decodes image bytes into a raster.
func (c *Codec) Decode(data []byte) (entity.RasterImage, error) {
	return DecodeBytes(data)
}

// Encode encodes a raster as PNG.
func (c *Codec) Encode(r entity.RasterImage) ([]byte, error) {
	return EncodePNG(r)
}

var _ port.ImageCodec = (*Codec)(nil)
