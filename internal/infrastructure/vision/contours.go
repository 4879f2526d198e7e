package vision

import (
	"sperm-analyzer/internal/domain/entity"
)

// Соседи по 8 направлениям: индекс растёт против часовой стрелки (ось Y вниз).
var directions = [8]entity.Point{
	{X: 1, Y: 0},   // 0: E
	{X: 1, Y: -1},  // 1: NE
	{X: 0, Y: -1},  // 2: N
	{X: -1, Y: -1}, // 3: NW
	{X: -1, Y: 0},  // 4: W
	{X: -1, Y: 1},  // 5: SW
	{X: 0, Y: 1},   // 6: S
	{X: 1, Y: 1},   // 7: SE
}

// FindExternalContours находит внешние границы 8-связных областей маски.
// Области, лежащие внутри дыр других областей, не возвращаются.
// Порядок — порядок обнаружения при построчном обходе.
func FindExternalContours(mask entity.BinaryMask) []entity.Contour {
	w, h := mask.Width, mask.Height
	if w <= 0 || h <= 0 {
		return nil
	}

	outside := outerBackground(mask)
	labels := make([]int32, w*h)
	var (
		contours []entity.Contour
		nextID   int32
	)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask.IsSet(x, y) || labels[y*w+x] != 0 {
				continue
			}

			nextID++
			area := labelRegion(mask, labels, x, y, nextID)

			// (x, y) — верхний левый пиксель области, над ним всегда фон.
			// Если этот фон не связан с краем кадра, область лежит в чужой дыре.
			if !outside[y*(w+2)+x+1] {
				continue
			}

			contours = append(contours, entity.Contour{
				Points: simplifyChain(traceOuterBorder(mask, entity.Point{X: x, Y: y})),
				Area:   area,
			})
		}
	}

	return contours
}

// outerBackground отмечает фон, 4-связный с рамкой вокруг кадра.
// Индексы даны для кадра с рамкой шириной 1 пиксель.
func outerBackground(mask entity.BinaryMask) []bool {
	pw, ph := mask.Width+2, mask.Height+2
	seen := make([]bool, pw*ph)
	stack := []entity.Point{{X: 0, Y: 0}}
	seen[0] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range [4]entity.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || ny < 0 || nx >= pw || ny >= ph {
				continue
			}
			idx := ny*pw + nx
			if seen[idx] || mask.IsSet(nx-1, ny-1) {
				continue
			}
			seen[idx] = true
			stack = append(stack, entity.Point{X: nx, Y: ny})
		}
	}

	return seen
}

// labelRegion помечает 8-связную область и возвращает её площадь в пикселях.
func labelRegion(mask entity.BinaryMask, labels []int32, x, y int, id int32) int {
	w := mask.Width
	labels[y*w+x] = id
	stack := []entity.Point{{X: x, Y: y}}
	area := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++

		for _, d := range directions {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !mask.IsSet(nx, ny) || labels[ny*w+nx] != 0 {
				continue
			}
			labels[ny*w+nx] = id
			stack = append(stack, entity.Point{X: nx, Y: ny})
		}
	}

	return area
}

// traceOuterBorder обходит внешнюю границу, начиная с верхнего левого пикселя
// области (обход границы по Судзуки–Абэ).
func traceOuterBorder(mask entity.BinaryMask, start entity.Point) []entity.Point {
	// Первый сосед ищется по часовой стрелке, начиная с западного.
	first := -1
	for k := 0; k < 8; k++ {
		d := (4 - k + 8) % 8
		if mask.IsSet(start.X+directions[d].X, start.Y+directions[d].Y) {
			first = d
			break
		}
	}
	if first < 0 {
		return []entity.Point{start}
	}

	second := step(start, first)
	prev, cur := second, start
	var chain []entity.Point

	for {
		from := directionTo(cur, prev)
		next := prev
		for k := 1; k <= 8; k++ {
			d := (from + k) % 8
			if q := step(cur, d); mask.IsSet(q.X, q.Y) {
				next = q
				break
			}
		}

		chain = append(chain, cur)
		if next == start && cur == second {
			return chain
		}
		prev, cur = cur, next
	}
}

// simplifyChain оставляет только точки, где меняется направление обхода.
func simplifyChain(chain []entity.Point) []entity.Point {
	n := len(chain)
	if n < 3 {
		return chain
	}

	out := make([]entity.Point, 0, n)
	for i, p := range chain {
		prev := chain[(i-1+n)%n]
		next := chain[(i+1)%n]
		if p.X-prev.X == next.X-p.X && p.Y-prev.Y == next.Y-p.Y {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByArea отбрасывает контуры с площадью меньше minArea. 0 отключает фильтр.
func FilterByArea(contours []entity.Contour, minArea int) []entity.Contour {
	if minArea <= 0 {
		return contours
	}
	out := make([]entity.Contour, 0, len(contours))
	for _, c := range contours {
		if c.Area >= minArea {
			out = append(out, c)
		}
	}
	return out
}

func step(p entity.Point, dir int) entity.Point {
	return entity.Point{X: p.X + directions[dir].X, Y: p.Y + directions[dir].Y}
}

func directionTo(from, to entity.Point) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	for i, d := range directions {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	return 0
}
