package port

import (
	"context"

	"sperm-analyzer/internal/domain/entity"
)

// ResultDescriber интерфейс описателя результата
type ResultDescriber interface {
	// Describe формирует текст для показа пользователю
	Describe(ctx context.Context, summary entity.Summary) (*entity.Description, error)
}
