package vision

import (
	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
)

// Pipeline — конвейер анализа на чистом Go:
// яркость → инверсный порог → внешние контуры → подсчёт → обводка.
type Pipeline struct {
	opts Options
}

// NewPipeline создаёт конвейер с проверенными настройками.
func NewPipeline(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{opts: opts}, nil
}

// Options возвращает настройки конвейера.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Analyze считает объекты и возвращает аннотированную копию изображения.
func (p *Pipeline) Analyze(img entity.RasterImage) (*entity.AnalysisResult, error) {
	gray, err := ToGrayscale(img, p.opts.LumaOrder)
	if err != nil {
		return nil, err
	}

	mask := ThresholdInv(gray, p.opts.Threshold)
	contours := FilterByArea(FindExternalContours(mask), p.opts.MinArea)

	return &entity.AnalysisResult{
		Annotated: DrawContours(img, contours, p.opts.Color, p.opts.StrokeWidth),
		Count:     len(contours),
		Contours:  contours,
	}, nil
}

// Analyze запускает конвейер с настройками по умолчанию и заданным порогом.
func Analyze(img entity.RasterImage, threshold int) (*entity.AnalysisResult, error) {
	opts := DefaultOptions()
	opts.Threshold = threshold
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return p.Analyze(img)
}

// Проверка реализации интерфейса
var _ port.ImageAnalyzer = (*Pipeline)(nil)
