package entity

// ChannelOrder описывает порядок каналов в буфере пикселей.
type ChannelOrder string

const (
	OrderRGBA ChannelOrder = "rgba"
	OrderBGRA ChannelOrder = "bgra"
	OrderRGB  ChannelOrder = "rgb"
	OrderBGR  ChannelOrder = "bgr"
)

// Channels возвращает количество каналов для порядка.
func (o ChannelOrder) Channels() int {
	switch o {
	case OrderRGBA, OrderBGRA:
		return 4
	case OrderRGB, OrderBGR:
		return 3
	}
	return 0
}

// RedFirst сообщает, лежит ли красный канал в буфере первым.
func (o ChannelOrder) RedFirst() bool {
	return o == OrderRGBA || o == OrderRGB
}

// RasterImage — неизменяемое растровое изображение, 8 бит на канал.
type RasterImage struct {
	Width  int
	Height int
	Order  ChannelOrder
	Pix    []byte // каналы идут подряд, строка за строкой
}

// NewRasterImage проверяет размеры и возвращает изображение.
func NewRasterImage(width, height int, order ChannelOrder, pix []byte) (RasterImage, error) {
	img := RasterImage{Width: width, Height: height, Order: order, Pix: pix}
	if err := img.Validate(); err != nil {
		return RasterImage{}, err
	}
	return img, nil
}

// NewFilledRaster создаёт изображение, залитое одним цветом.
func NewFilledRaster(width, height int, order ChannelOrder, px ...byte) RasterImage {
	ch := order.Channels()
	pix := make([]byte, width*height*ch)
	for i := 0; i+ch <= len(pix); i += ch {
		copy(pix[i:i+ch], px)
	}
	return RasterImage{Width: width, Height: height, Order: order, Pix: pix}
}

// Channels возвращает количество каналов на пиксель.
func (r RasterImage) Channels() int {
	return r.Order.Channels()
}

// Validate проверяет инварианты изображения.
func (r RasterImage) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return NewInvalidInput("image has zero area (%dx%d)", r.Width, r.Height)
	}
	ch := r.Channels()
	if ch < 3 {
		return NewInvalidInput("image has %d colour channels, need at least 3", ch)
	}
	if want := r.Width * r.Height * ch; len(r.Pix) != want {
		return NewInvalidInput("pixel buffer has %d bytes, want %d", len(r.Pix), want)
	}
	return nil
}

// Offset возвращает индекс первого байта пикселя (x, y).
func (r RasterImage) Offset(x, y int) int {
	return (y*r.Width + x) * r.Channels()
}

// Clone возвращает копию с собственным буфером.
func (r RasterImage) Clone() RasterImage {
	pix := make([]byte, len(r.Pix))
	copy(pix, r.Pix)
	r.Pix = pix
	return r
}

// GrayscaleMap — один байт яркости на пиксель.
type GrayscaleMap struct {
	Width  int
	Height int
	Pix    []byte
}

// At возвращает яркость пикселя (x, y).
func (g GrayscaleMap) At(x, y int) byte {
	return g.Pix[y*g.Width+x]
}

const (
	Background byte = 0
	Foreground byte = 255
)

// BinaryMask — бинарная маска, каждое значение 0 или 255.
type BinaryMask struct {
	Width  int
	Height int
	Pix    []byte
}

// IsSet сообщает, относится ли пиксель к объекту. Вне границ — фон.
func (m BinaryMask) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] == Foreground
}
