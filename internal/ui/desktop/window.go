package desktop

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"sperm-analyzer/internal/infrastructure/imageio"
)

const (
	windowTitle = "Sperm Analyzer"
	borderWidth = 2
)

// Window — главное окно: снимок, кнопки и подписи с результатом.
type Window struct {
	app       fyne.App
	win       fyne.Window
	presenter *Presenter

	image      *canvas.Image
	background *canvas.Rectangle
	threshold  *widget.Label
	fields     *widget.Label
	count      *widget.Label
	details    *widget.Label
}

// NewWindow собирает окно и меню.
func NewWindow(a fyne.App, presenter *Presenter) *Window {
	w := &Window{
		app:       a,
		win:       a.NewWindow(windowTitle),
		presenter: presenter,
	}

	w.image = canvas.NewImageFromImage(nil)
	w.image.FillMode = canvas.ImageFillContain
	w.image.SetMinSize(fyne.NewSize(640, 480))

	w.background = canvas.NewRectangle(color.Transparent)
	w.background.StrokeColor = color.Black
	w.background.StrokeWidth = borderWidth

	initial := presenter.InitialView()
	w.fields = widget.NewLabel(initial.FieldsLabel)
	w.count = widget.NewLabel(initial.CountLabel)
	w.details = widget.NewLabel("")
	w.threshold = widget.NewLabel(thresholdText(presenter.Threshold()))

	slider := widget.NewSlider(0, 255)
	slider.Step = 1
	slider.SetValue(float64(presenter.Threshold()))
	slider.OnChanged = func(v float64) {
		presenter.SetThreshold(int(v))
		w.threshold.SetText(thresholdText(int(v)))
	}

	controls := container.NewVBox(
		widget.NewButton("Load Image", w.loadImage),
		widget.NewButton("Analyze", w.analyze),
		container.NewBorder(nil, nil, w.threshold, nil, slider),
		widget.NewLabel("Results:"),
		w.fields,
		w.count,
		w.details,
	)

	w.win.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", fyne.NewMenuItem("Exit", a.Quit)),
		fyne.NewMenu("Color", fyne.NewMenuItem("Change Image Color", w.changeImageColor)),
	))
	w.win.Canvas().AddShortcut(
		&fynedesktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { a.Quit() },
	)

	w.win.SetContent(container.NewBorder(nil, controls, nil, nil, container.NewStack(w.background, w.image)))
	return w
}

// ShowAndRun показывает окно и запускает цикл событий.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func (w *Window) loadImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		img, err := w.presenter.Load(reader)
		if err != nil {
			log.Printf("Error loading %s: %v", reader.URI().Name(), err)
			dialog.ShowError(err, w.win)
			return
		}
		log.Printf("Loaded %s", reader.URI().Name())

		w.image.Image = img
		w.image.Refresh()
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter(imageio.Extensions))
	fd.Show()
}

func (w *Window) analyze() {
	view, err := w.presenter.Analyze(context.Background())
	if errors.Is(err, ErrNoImage) {
		dialog.ShowInformation("Analyze", "Please load an image first.", w.win)
		return
	}
	if err != nil {
		log.Printf("Error analyzing image: %v", err)
		dialog.ShowError(err, w.win)
		return
	}

	w.fields.SetText(view.FieldsLabel)
	w.count.SetText(view.CountLabel)
	w.details.SetText(view.Details)
	w.image.Image = view.Image
	w.image.Refresh()
}

// changeImageColor меняет фон под снимком; на анализ не влияет.
func (w *Window) changeImageColor() {
	picker := dialog.NewColorPicker("Change Image Color", "Background color", func(c color.Color) {
		w.background.FillColor = c
		w.background.Refresh()
	}, w.win)
	picker.Advanced = true
	picker.Show()
}

func thresholdText(v int) string {
	return fmt.Sprintf("Threshold: %d", v)
}
