package vision

import (
	"sperm-analyzer/internal/domain/entity"
)

// ThresholdInv строит инверсную бинарную маску: тёмные пиксели становятся объектом.
func ThresholdInv(gray entity.GrayscaleMap, threshold int) entity.BinaryMask {
	out := make([]byte, len(gray.Pix))
	for i, v := range gray.Pix {
		if int(v) < threshold {
			out[i] = entity.Foreground
		}
	}
	return entity.BinaryMask{Width: gray.Width, Height: gray.Height, Pix: out}
}
