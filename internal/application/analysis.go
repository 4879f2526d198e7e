package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gonum.org/v1/gonum/stat"

	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
)

// AnalyzerFactory создаёт конвейер под заданный порог бинаризации.
type AnalyzerFactory func(threshold int) (port.ImageAnalyzer, error)

type AnalysisService struct {
	factory          AnalyzerFactory
	codec            port.ImageCodec
	describer        port.ResultDescriber
	defaultThreshold int
	maxCount         int
}

// AnalysisOutput содержит результат подсчёта, подписи и картинку с обводкой.
type AnalysisOutput struct {
	Result      *entity.AnalysisResult
	Summary     entity.Summary
	Description *entity.Description
	Annotated   []byte // закодированная аннотированная копия
}

// NewAnalysisService создаёт сервис, который запускает анализ снимков.
func NewAnalysisService(factory AnalyzerFactory, codec port.ImageCodec, describer port.ResultDescriber, defaultThreshold, maxCount int) *AnalysisService {
	return &AnalysisService{
		factory:          factory,
		codec:            codec,
		describer:        describer,
		defaultThreshold: defaultThreshold,
		maxCount:         maxCount,
	}
}

// DefaultThreshold возвращает порог, который используется по умолчанию.
func (s *AnalysisService) DefaultThreshold() int {
	return s.defaultThreshold
}

// MaxCount возвращает знаменатель для подписи количества.
func (s *AnalysisService) MaxCount() int {
	return s.maxCount
}

// Analyze считает объекты на уже декодированном изображении.
func (s *AnalysisService) Analyze(ctx context.Context, img entity.RasterImage, threshold int) (*AnalysisOutput, error) {
	if s.factory == nil {
		return nil, errors.New("analyzer is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analyzer, err := s.factory(threshold)
	if err != nil {
		return nil, err
	}

	result, err := analyzer.Analyze(img)
	if err != nil {
		return nil, err
	}
	log.Printf("analyzed %dx%d image: threshold=%d count=%d", img.Width, img.Height, threshold, result.Count)

	out := &AnalysisOutput{Result: result, Summary: s.Summarize(result)}
	if s.describer != nil {
		desc, err := s.describer.Describe(ctx, out.Summary)
		if err != nil {
			return nil, fmt.Errorf("describe result: %w", err)
		}
		out.Description = desc
	}
	return out, nil
}

// AnalyzeBytes декодирует снимок, анализирует его и кодирует аннотированную копию.
func (s *AnalysisService) AnalyzeBytes(ctx context.Context, data []byte, threshold int) (*AnalysisOutput, error) {
	if s.codec == nil {
		return nil, errors.New("image codec is not configured")
	}

	img, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}

	out, err := s.Analyze(ctx, img, threshold)
	if err != nil {
		return nil, err
	}

	out.Annotated, err = s.codec.Encode(out.Result.Annotated)
	if err != nil {
		return nil, fmt.Errorf("encode annotated image: %w", err)
	}
	return out, nil
}

// Summarize считает значения для подписей. Анализируется одно поле за раз.
func (s *AnalysisService) Summarize(result *entity.AnalysisResult) entity.Summary {
	summary := entity.Summary{
		Fields:      1,
		TotalFields: 1,
		Count:       result.Count,
		MaxCount:    s.maxCount,
	}
	if len(result.Contours) == 0 {
		return summary
	}

	areas := make([]float64, len(result.Contours))
	for i, c := range result.Contours {
		areas[i] = float64(c.Area)
	}
	if len(areas) == 1 {
		summary.MeanArea = areas[0]
		return summary
	}
	summary.MeanArea, summary.StdDevArea = stat.MeanStdDev(areas, nil)
	return summary
}
