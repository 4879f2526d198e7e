package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRasterImage_Validation(t *testing.T) {
	_, err := NewRasterImage(2, 2, OrderRGBA, make([]byte, 16))
	require.NoError(t, err)

	_, err = NewRasterImage(0, 5, OrderRGBA, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewRasterImage(2, 2, OrderRGBA, make([]byte, 15))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewRasterImage(2, 2, ChannelOrder("gray"), make([]byte, 4))
	require.ErrorIs(t, err, ErrInvalidInput)

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	require.Contains(t, invalid.Reason, "colour channels")
}

func TestNewFilledRaster(t *testing.T) {
	img := NewFilledRaster(3, 2, OrderBGR, 1, 2, 3)
	require.NoError(t, img.Validate())
	require.Len(t, img.Pix, 18)
	off := img.Offset(2, 1)
	require.Equal(t, []byte{1, 2, 3}, img.Pix[off:off+3])
}

func TestRasterImage_CloneIsIndependent(t *testing.T) {
	img := NewFilledRaster(2, 2, OrderRGBA, 9, 9, 9, 255)
	clone := img.Clone()
	clone.Pix[0] = 0
	require.Equal(t, byte(9), img.Pix[0])
}

func TestBinaryMask_IsSetOutOfBounds(t *testing.T) {
	m := BinaryMask{Width: 1, Height: 1, Pix: []byte{Foreground}}
	require.True(t, m.IsSet(0, 0))
	require.False(t, m.IsSet(-1, 0))
	require.False(t, m.IsSet(0, 1))
}
