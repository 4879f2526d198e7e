package vision

import (
	"image/color"

	"sperm-analyzer/internal/domain/entity"
)

// DrawContours рисует контуры на копии изображения и возвращает копию.
func DrawContours(img entity.RasterImage, contours []entity.Contour, c color.RGBA, stroke int) entity.RasterImage {
	out := img.Clone()
	if len(contours) == 0 {
		return out
	}

	pen := newPen(out, c, stroke)
	for _, contour := range contours {
		pts := contour.Points
		switch len(pts) {
		case 0:
			continue
		case 1:
			pen.dot(pts[0].X, pts[0].Y)
		default:
			for i := range pts {
				pen.line(pts[i], pts[(i+1)%len(pts)])
			}
		}
	}
	return out
}

// pen закрашивает квадратную кисть заданной толщины.
type pen struct {
	img    entity.RasterImage
	px     []byte
	stroke int
}

func newPen(img entity.RasterImage, c color.RGBA, stroke int) *pen {
	px := make([]byte, img.Channels())
	if img.Order.RedFirst() {
		px[0], px[2] = c.R, c.B
	} else {
		px[0], px[2] = c.B, c.R
	}
	px[1] = c.G
	if len(px) == 4 {
		px[3] = c.A
	}
	return &pen{img: img, px: px, stroke: stroke}
}

func (p *pen) dot(x, y int) {
	lo := -p.stroke / 2
	for dy := lo; dy < lo+p.stroke; dy++ {
		for dx := lo; dx < lo+p.stroke; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= p.img.Width || ny >= p.img.Height {
				continue
			}
			off := p.img.Offset(nx, ny)
			copy(p.img.Pix[off:off+len(p.px)], p.px)
		}
	}
}

// line рисует отрезок по алгоритму Брезенхэма.
func (p *pen) line(a, b entity.Point) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	e := dx + dy
	for {
		p.dot(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
