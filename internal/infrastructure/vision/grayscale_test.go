package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sperm-analyzer/internal/domain/entity"
)

func TestToGrayscale_NeutralPixelsKeepLevel(t *testing.T) {
	for _, level := range []byte{0, 50, 119, 120, 200, 255} {
		gray, err := ToGrayscale(newScene(2, 2, level), LumaAuto)
		require.NoError(t, err)
		require.Equal(t, []byte{level, level, level, level}, gray.Pix)
	}
}

func TestToGrayscale_ChannelOrder(t *testing.T) {
	red := entity.NewFilledRaster(1, 1, entity.OrderRGBA, 255, 0, 0, 255)

	gray, err := ToGrayscale(red, LumaAuto)
	require.NoError(t, err)
	require.Equal(t, byte(76), gray.Pix[0])

	gray, err = ToGrayscale(red, LumaBGR)
	require.NoError(t, err)
	require.Equal(t, byte(29), gray.Pix[0])

	bgr := entity.NewFilledRaster(1, 1, entity.OrderBGR, 0, 0, 255)
	gray, err = ToGrayscale(bgr, LumaAuto)
	require.NoError(t, err)
	require.Equal(t, byte(76), gray.Pix[0])
}

func TestToGrayscale_InvalidInput(t *testing.T) {
	_, err := ToGrayscale(entity.RasterImage{Order: entity.OrderRGBA}, LumaAuto)
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = ToGrayscale(entity.RasterImage{Width: 1, Height: 1, Order: "ga", Pix: []byte{1, 2}}, LumaAuto)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestThresholdInv(t *testing.T) {
	gray := entity.GrayscaleMap{Width: 5, Height: 1, Pix: []byte{0, 119, 120, 121, 255}}
	mask := ThresholdInv(gray, 120)
	require.Equal(t, []byte{255, 255, 0, 0, 0}, mask.Pix)

	require.Equal(t, []byte{0, 0, 0, 0, 0}, ThresholdInv(gray, 0).Pix)
	require.Equal(t, []byte{255, 255, 255, 255, 0}, ThresholdInv(gray, 255).Pix)
}
