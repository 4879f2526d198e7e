package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
	"sperm-analyzer/internal/infrastructure/imageio"
	"sperm-analyzer/internal/infrastructure/report"
	"sperm-analyzer/internal/infrastructure/vision"
)

func nativeFactory(threshold int) (port.ImageAnalyzer, error) {
	opts := vision.DefaultOptions()
	opts.Threshold = threshold
	return vision.NewPipeline(opts)
}

func newTestService() *AnalysisService {
	return NewAnalysisService(nativeFactory, imageio.NewCodec(), report.NewTextDescriber(false), 120, 500)
}

// sampleImage — светлый кадр 10×10 с тёмными блоками 3×3 и 2×2.
func sampleImage() entity.RasterImage {
	img := entity.NewFilledRaster(10, 10, entity.OrderRGBA, 200, 200, 200, 255)
	for _, r := range []entity.Rect{{X: 1, Y: 1, Width: 3, Height: 3}, {X: 6, Y: 6, Width: 2, Height: 2}} {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				off := img.Offset(x, y)
				img.Pix[off], img.Pix[off+1], img.Pix[off+2] = 50, 50, 50
			}
		}
	}
	return img
}

func TestAnalysisService_Analyze(t *testing.T) {
	svc := newTestService()

	out, err := svc.Analyze(context.Background(), sampleImage(), svc.DefaultThreshold())
	require.NoError(t, err)
	require.Equal(t, 2, out.Result.Count)
	require.Equal(t, 2, out.Summary.Count)
	require.Equal(t, 500, out.Summary.MaxCount)
	require.InDelta(t, 6.5, out.Summary.MeanArea, 1e-9)
	require.Equal(t, "Results:\nFields: 1/1\nSpermatozoa: 2/500", out.Description.Text)
	require.Nil(t, out.Annotated)
}

func TestAnalysisService_AnalyzeBytes(t *testing.T) {
	svc := newTestService()
	data, err := imageio.EncodePNG(sampleImage())
	require.NoError(t, err)

	out, err := svc.AnalyzeBytes(context.Background(), data, 120)
	require.NoError(t, err)
	require.Equal(t, 2, out.Result.Count)
	require.NotEmpty(t, out.Annotated)

	annotated, err := imageio.DecodeBytes(out.Annotated)
	require.NoError(t, err)
	require.Equal(t, out.Result.Annotated.Pix, annotated.Pix)
}

func TestAnalysisService_InvalidInput(t *testing.T) {
	svc := newTestService()

	_, err := svc.AnalyzeBytes(context.Background(), []byte("not an image"), 120)
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = svc.Analyze(context.Background(), entity.RasterImage{Order: entity.OrderRGBA}, 120)
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = svc.Analyze(context.Background(), sampleImage(), 300)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestAnalysisService_NotConfigured(t *testing.T) {
	svc := NewAnalysisService(nil, nil, nil, 120, 500)

	_, err := svc.Analyze(context.Background(), sampleImage(), 120)
	require.Error(t, err)

	_, err = svc.AnalyzeBytes(context.Background(), []byte{1}, 120)
	require.Error(t, err)
}

func TestAnalysisService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService().Analyze(ctx, sampleImage(), 120)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestAnalysisService_Summarize(t *testing.T) {
	svc := newTestService()

	empty := svc.Summarize(&entity.AnalysisResult{})
	require.Zero(t, empty.Count)
	require.Zero(t, empty.MeanArea)

	single := svc.Summarize(&entity.AnalysisResult{Count: 1, Contours: []entity.Contour{{Area: 7}}})
	require.Equal(t, 7.0, single.MeanArea)
	require.Zero(t, single.StdDevArea)

	many := svc.Summarize(&entity.AnalysisResult{Count: 3, Contours: []entity.Contour{{Area: 2}, {Area: 4}, {Area: 6}}})
	require.InDelta(t, 4, many.MeanArea, 1e-9)
	require.InDelta(t, 2, many.StdDevArea, 1e-9)
}
