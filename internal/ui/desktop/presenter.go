package desktop

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"

	app "sperm-analyzer/internal/application"
	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/infrastructure/imageio"
	"sperm-analyzer/internal/infrastructure/report"
)

// ErrNoImage возвращается, если анализ запущен до загрузки снимка.
var ErrNoImage = errors.New("please load an image first")

// initialFields — подпись полей до первого анализа.
const initialFields = 5

// View — то, что окно показывает после действия пользователя.
type View struct {
	Image       image.Image
	FieldsLabel string
	CountLabel  string
	Details     string
}

// Presenter хранит отображаемый снимок и переводит результаты в подписи.
type Presenter struct {
	service   *app.AnalysisService
	mu        sync.Mutex
	threshold int
	current   *entity.RasterImage
}

// NewPresenter создаёт презентер с порогом сервиса по умолчанию.
func NewPresenter(service *app.AnalysisService) *Presenter {
	return &Presenter{service: service, threshold: service.DefaultThreshold()}
}

// InitialView возвращает подписи окна до загрузки снимка.
func (p *Presenter) InitialView() View {
	s := entity.Summary{TotalFields: initialFields, MaxCount: p.service.MaxCount()}
	return View{FieldsLabel: report.FieldsLabel(s), CountLabel: report.CountLabel(s)}
}

// Threshold возвращает текущий порог.
func (p *Presenter) Threshold() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.threshold
}

// SetThreshold меняет порог для следующих запусков анализа.
func (p *Presenter) SetThreshold(threshold int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.threshold = threshold
}

// Load декодирует выбранный файл и делает его отображаемым снимком.
func (p *Presenter) Load(r io.Reader) (image.Image, error) {
	raster, err := imageio.Decode(r)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.current = &raster
	p.mu.Unlock()

	return imageio.ToImage(raster), nil
}

// Analyze запускает анализ текущего снимка и заменяет его аннотированной копией.
func (p *Presenter) Analyze(ctx context.Context) (View, error) {
	p.mu.Lock()
	current, threshold := p.current, p.threshold
	p.mu.Unlock()

	if current == nil {
		return View{}, ErrNoImage
	}

	out, err := p.service.Analyze(ctx, *current, threshold)
	if err != nil {
		return View{}, err
	}

	annotated := out.Result.Annotated
	p.mu.Lock()
	p.current = &annotated
	p.mu.Unlock()

	view := View{
		Image:       imageio.ToImage(annotated),
		FieldsLabel: report.FieldsLabel(out.Summary),
		CountLabel:  report.CountLabel(out.Summary),
	}
	if out.Summary.Count > 0 {
		view.Details = report.AreaLabel(out.Summary)
	}
	return view, nil
}
