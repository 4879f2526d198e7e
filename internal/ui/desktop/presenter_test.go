package desktop

import (
	"bytes"
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	app "sperm-analyzer/internal/application"
	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
	"sperm-analyzer/internal/infrastructure/imageio"
	"sperm-analyzer/internal/infrastructure/report"
	"sperm-analyzer/internal/infrastructure/vision"
)

func newTestPresenter() *Presenter {
	factory := func(threshold int) (port.ImageAnalyzer, error) {
		opts := vision.DefaultOptions()
		opts.Threshold = threshold
		return vision.NewPipeline(opts)
	}
	return NewPresenter(app.NewAnalysisService(factory, imageio.NewCodec(), report.NewTextDescriber(false), 120, 500))
}

// blockPNG — светлый кадр 10×10 с тёмным блоком 3×3 в (4,4).
func blockPNG(t *testing.T) []byte {
	img := entity.NewFilledRaster(10, 10, entity.OrderRGBA, 200, 200, 200, 255)
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			off := img.Offset(x, y)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2] = 50, 50, 50
		}
	}
	data, err := imageio.EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestPresenter_InitialView(t *testing.T) {
	view := newTestPresenter().InitialView()
	require.Equal(t, "Fields: 0/5", view.FieldsLabel)
	require.Equal(t, "Spermatozoa: 0/500", view.CountLabel)
	require.Nil(t, view.Image)
}

func TestPresenter_AnalyzeWithoutImage(t *testing.T) {
	_, err := newTestPresenter().Analyze(context.Background())
	require.ErrorIs(t, err, ErrNoImage)
}

func TestPresenter_LoadAndAnalyze(t *testing.T) {
	p := newTestPresenter()

	img, err := p.Load(bytes.NewReader(blockPNG(t)))
	require.NoError(t, err)
	require.Equal(t, 10, img.Bounds().Dx())

	view, err := p.Analyze(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Fields: 1/1", view.FieldsLabel)
	require.Equal(t, "Spermatozoa: 1/500", view.CountLabel)
	require.Equal(t, "Mean area: 9.0 px (sd 0.0)", view.Details)

	r, g, b, _ := view.Image.At(4, 4).RGBA()
	require.Equal(t, color.RGBA{G: 255, A: 255}, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255})
}

func TestPresenter_LoadRejectsGarbage(t *testing.T) {
	p := newTestPresenter()
	_, err := p.Load(bytes.NewReader([]byte("not an image")))
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = p.Analyze(context.Background())
	require.ErrorIs(t, err, ErrNoImage)
}

func TestPresenter_Threshold(t *testing.T) {
	p := newTestPresenter()
	require.Equal(t, 120, p.Threshold())

	_, err := p.Load(bytes.NewReader(blockPNG(t)))
	require.NoError(t, err)

	// Блок яркостью 50 не проходит порог 40.
	p.SetThreshold(40)
	view, err := p.Analyze(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Spermatozoa: 0/500", view.CountLabel)
	require.Empty(t, view.Details)
}
