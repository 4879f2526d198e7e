//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"sperm-analyzer/internal/domain/entity"
)

// GoCVPipeline — заглушка для сборки без OpenCV.
type GoCVPipeline struct {
	opts Options
}

// NewGoCVPipeline создаёт конвейер-заглушку (без OpenCV).
func NewGoCVPipeline(opts Options) (*GoCVPipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &GoCVPipeline{opts: opts}, nil
}

// Analyze возвращает ошибку, если сборка без тега gocv.
func (p *GoCVPipeline) Analyze(img entity.RasterImage) (*entity.AnalysisResult, error) {
	_ = img
	return nil, errors.New("gocv build tag is not enabled")
}
