package vision

import (
	"image/color"

	"sperm-analyzer/internal/domain/entity"
)

// LumaOrder задаёт, какой канал считать красным при расчёте яркости.
type LumaOrder string

const (
	LumaAuto LumaOrder = "auto" // по заявленному порядку каналов изображения
	LumaRGB  LumaOrder = "rgb"  // первый канал — красный
	LumaBGR  LumaOrder = "bgr"  // первый канал — синий
)

const (
	DefaultThreshold   = 120
	DefaultStrokeWidth = 2
)

// Highlight — цвет, которым обводятся найденные объекты.
var Highlight = color.RGBA{G: 255, A: 255}

// Options настраивает конвейер анализа.
type Options struct {
	Threshold   int       // пиксель — объект, если яркость строго меньше порога
	MinArea     int       // 0 — без фильтрации по площади
	LumaOrder   LumaOrder // предположение о порядке каналов
	StrokeWidth int
	Color       color.RGBA
}

// DefaultOptions возвращает настройки исходной программы.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		MinArea:     0,
		LumaOrder:   LumaAuto,
		StrokeWidth: DefaultStrokeWidth,
		Color:       Highlight,
	}
}

// Validate проверяет диапазоны параметров.
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 255 {
		return entity.NewInvalidInput("threshold %d out of range [0,255]", o.Threshold)
	}
	if o.MinArea < 0 {
		return entity.NewInvalidInput("min area %d must not be negative", o.MinArea)
	}
	if o.StrokeWidth <= 0 {
		return entity.NewInvalidInput("stroke width %d must be positive", o.StrokeWidth)
	}
	if _, err := ParseLumaOrder(string(o.LumaOrder)); err != nil {
		return err
	}
	return nil
}

// ParseLumaOrder разбирает значение из конфигурации. Пустая строка — auto.
func ParseLumaOrder(s string) (LumaOrder, error) {
	switch LumaOrder(s) {
	case "", LumaAuto:
		return LumaAuto, nil
	case LumaRGB, LumaBGR:
		return LumaOrder(s), nil
	}
	return "", entity.NewInvalidInput("unknown luma order %q (use auto, rgb or bgr)", s)
}

// redFirst решает, читать ли первый канал как красный.
func (l LumaOrder) redFirst(order entity.ChannelOrder) bool {
	switch l {
	case LumaRGB:
		return true
	case LumaBGR:
		return false
	}
	return order.RedFirst()
}
