package container

import (
	"sperm-analyzer/config"
	app "sperm-analyzer/internal/application"
	"sperm-analyzer/internal/domain/port"
	"sperm-analyzer/internal/infrastructure/imageio"
	"sperm-analyzer/internal/infrastructure/report"
	"sperm-analyzer/internal/infrastructure/storage"
	"sperm-analyzer/internal/infrastructure/vision"
)

type Container struct {
	UserService     *app.UserService
	AnalysisService *app.AnalysisService
}

func New(userRepo port.UserRepository, factory app.AnalyzerFactory, codec port.ImageCodec, describer port.ResultDescriber, threshold, maxCount int) *Container {
	userService := app.NewUserService(userRepo)
	analysisService := app.NewAnalysisService(factory, codec, describer, threshold, maxCount)

	return &Container{
		UserService:     userService,
		AnalysisService: analysisService,
	}
}

// Build собирает зависимости приложения по конфигурации.
func Build(cfg *config.Config) (*Container, error) {
	luma, err := vision.ParseLumaOrder(cfg.LumaOrder)
	if err != nil {
		return nil, err
	}

	base := vision.DefaultOptions()
	base.MinArea = cfg.MinArea
	base.LumaOrder = luma

	factory := func(threshold int) (port.ImageAnalyzer, error) {
		opts := base
		opts.Threshold = threshold
		return vision.NewAnalyzer(cfg.Backend, opts)
	}

	// Проверяем настройки сразу, а не при первом снимке.
	if _, err := factory(cfg.Threshold); err != nil {
		return nil, err
	}

	return New(
		storage.NewMemoryUserRepository(),
		factory,
		imageio.NewCodec(),
		report.NewTextDescriber(cfg.ShowAreas),
		cfg.Threshold,
		cfg.MaxCount,
	), nil
}
