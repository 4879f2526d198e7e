//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"sperm-analyzer/internal/domain/entity"
)

// GoCVPipeline — тот же конвейер поверх OpenCV.
type GoCVPipeline struct {
	opts Options
}

// NewGoCVPipeline создаёт конвейер на OpenCV.
func NewGoCVPipeline(opts Options) (*GoCVPipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &GoCVPipeline{opts: opts}, nil
}

// Analyze считает объекты и возвращает аннотированную копию изображения.
func (p *GoCVPipeline) Analyze(img entity.RasterImage) (*entity.AnalysisResult, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	matType := gocv.MatTypeCV8UC4
	if img.Channels() == 3 {
		matType = gocv.MatTypeCV8UC3
	}
	mat, err := gocv.NewMatFromBytes(img.Height, img.Width, matType, img.Clone().Pix)
	if err != nil {
		return nil, fmt.Errorf("wrap pixels: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, grayConversion(img, p.opts.LumaOrder))

	// OpenCV относит к объекту пиксели <= порога, нам нужно строго меньше.
	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(gray, &thresh, float32(p.opts.Threshold-1), 255, gocv.ThresholdBinaryInv)

	found := gocv.FindContours(thresh, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	kept := gocv.NewPointsVector()
	defer kept.Close()

	region := gocv.NewMatWithSize(img.Height, img.Width, gocv.MatTypeCV8U)
	defer region.Close()
	inside := gocv.NewMat()
	defer inside.Close()

	contours := make([]entity.Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		region.SetTo(gocv.NewScalar(0, 0, 0, 0))
		gocv.DrawContours(&region, found, i, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
		gocv.BitwiseAnd(region, thresh, &inside)
		area := gocv.CountNonZero(inside)
		if p.opts.MinArea > 0 && area < p.opts.MinArea {
			continue
		}

		pts := found.At(i).ToPoints()
		pv := gocv.NewPointVectorFromPoints(pts)
		kept.Append(pv)
		pv.Close()
		contours = append(contours, entity.Contour{Points: toEntityPoints(pts), Area: area})
	}

	if kept.Size() > 0 {
		gocv.DrawContours(&mat, kept, -1, matColor(img.Order, p.opts.Color), p.opts.StrokeWidth)
	}

	annotated, err := entity.NewRasterImage(img.Width, img.Height, img.Order, mat.ToBytes())
	if err != nil {
		return nil, err
	}

	return &entity.AnalysisResult{
		Annotated: annotated,
		Count:     len(contours),
		Contours:  contours,
	}, nil
}

func grayConversion(img entity.RasterImage, luma LumaOrder) gocv.ColorConversionCode {
	red := luma.redFirst(img.Order)
	switch {
	case img.Channels() == 4 && red:
		return gocv.ColorRGBAToGray
	case img.Channels() == 4:
		return gocv.ColorBGRAToGray
	case red:
		return gocv.ColorRGBToGray
	}
	return gocv.ColorBGRToGray
}

// matColor раскладывает цвет под порядок каналов: gocv пишет R в третий канал.
func matColor(order entity.ChannelOrder, c color.RGBA) color.RGBA {
	if order.RedFirst() {
		c.R, c.B = c.B, c.R
	}
	return c
}

func toEntityPoints(pts []image.Point) []entity.Point {
	out := make([]entity.Point, len(pts))
	for i, p := range pts {
		out[i] = entity.Point{X: p.X, Y: p.Y}
	}
	return out
}
