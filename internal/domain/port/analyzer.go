package port

import (
	"sperm-analyzer/internal/domain/entity"
)

// ImageAnalyzer интерфейс конвейера анализа
type ImageAnalyzer interface {
	// Analyze считает объекты на изображении и возвращает аннотированную копию
	Analyze(img entity.RasterImage) (*entity.AnalysisResult, error)
}
