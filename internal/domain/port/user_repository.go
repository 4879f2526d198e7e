package port

import (
	"context"

	"sperm-analyzer/internal/domain/entity"
)

// UserRepository хранит сессии пользователей бота.
// Возвращаемые пользователи — снимки; изменения проходят через Save или Update.
type UserRepository interface {
	// Get возвращает пользователя, при первом обращении создаёт сессию
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save перезаписывает сессию целиком
	Save(ctx context.Context, user *entity.User) error

	// Update атомарно применяет fn к сессии и возвращает результат
	Update(ctx context.Context, userID, chatID int64, fn func(*entity.User)) (*entity.User, error)
}
