package main

import (
	"log"

	fyneapp "fyne.io/fyne/v2/app"

	"sperm-analyzer/config"
	"sperm-analyzer/internal/container"
	"sperm-analyzer/internal/ui/desktop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appContainer, err := container.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	a := fyneapp.New()
	win := desktop.NewWindow(a, desktop.NewPresenter(appContainer.AnalysisService))
	win.ShowAndRun()
}
