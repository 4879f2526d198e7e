package port

import (
	"sperm-analyzer/internal/domain/entity"
)

// ImageCodec интерфейс кодека изображений
type ImageCodec interface {
	// Decode превращает байты файла в растровое изображение
	Decode(data []byte) (entity.RasterImage, error)

	// Encode кодирует растровое изображение для отправки пользователю
	Encode(img entity.RasterImage) ([]byte, error)
}
