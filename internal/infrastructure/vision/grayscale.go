package vision

import (
	"sperm-analyzer/internal/domain/entity"
)

// Весовые коэффициенты 0.299, 0.587, 0.114 в фиксированной точке, сумма 1<<14.
const (
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
	lumaShift = 14
)

// ToGrayscale переводит изображение в карту яркости.
func ToGrayscale(img entity.RasterImage, luma LumaOrder) (entity.GrayscaleMap, error) {
	if err := img.Validate(); err != nil {
		return entity.GrayscaleMap{}, err
	}

	ch := img.Channels()
	rIdx, bIdx := 0, 2
	if !luma.redFirst(img.Order) {
		rIdx, bIdx = 2, 0
	}

	out := make([]byte, img.Width*img.Height)
	for i, off := 0, 0; i < len(out); i, off = i+1, off+ch {
		r := uint32(img.Pix[off+rIdx])
		g := uint32(img.Pix[off+1])
		b := uint32(img.Pix[off+bIdx])
		out[i] = byte((r*lumaR + g*lumaG + b*lumaB + 1<<(lumaShift-1)) >> lumaShift)
	}

	return entity.GrayscaleMap{Width: img.Width, Height: img.Height, Pix: out}, nil
}
