package vision

import (
	"sperm-analyzer/internal/domain/entity"
)

// newScene создаёт светлый кадр RGBA заданной яркости.
func newScene(width, height int, level byte) entity.RasterImage {
	return entity.NewFilledRaster(width, height, entity.OrderRGBA, level, level, level, 255)
}

// fillRect закрашивает прямоугольник [x0,x1]×[y0,y1] включительно.
func fillRect(img entity.RasterImage, x0, y0, x1, y1 int, level byte) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			off := img.Offset(x, y)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2] = level, level, level
		}
	}
}

// maskFrom строит маску из строк, где '#' — объект.
func maskFrom(rows ...string) entity.BinaryMask {
	m := entity.BinaryMask{Width: len(rows[0]), Height: len(rows), Pix: make([]byte, len(rows[0])*len(rows))}
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				m.Pix[y*m.Width+x] = entity.Foreground
			}
		}
	}
	return m
}

// blobGrid рисует n блоков 3×3 с зазором 2 пикселя в кадре 50×50.
func blobGrid(n int) entity.RasterImage {
	img := newScene(50, 50, 200)
	for i := 0; i < n; i++ {
		x := 1 + (i%10)*5
		y := 1 + (i/10)*5
		fillRect(img, x, y, x+2, y+2, 40)
	}
	return img
}
