package entity

// Point — целочисленная точка на изображении.
type Point struct {
	X int
	Y int
}

// Rect — ограничивающий прямоугольник, Width и Height включают крайние пиксели.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center возвращает координаты центра прямоугольника.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contour — замкнутая внешняя граница одной связной области маски.
type Contour struct {
	Points []Point // упрощённая ломаная, коллинеарные точки схлопнуты
	Area   int     // число пикселей области
}

// Bounds возвращает ограничивающий прямоугольник контура.
func (c Contour) Bounds() Rect {
	if len(c.Points) == 0 {
		return Rect{}
	}
	minX, minY := c.Points[0].X, c.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range c.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}
