package storage

import (
	"context"
	"errors"
	"sync"

	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
)

// MemoryUserRepository держит сессии бота в памяти процесса.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]entity.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]entity.User),
	}
}

// Get возвращает копию сессии, создаёт её при первом обращении
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()
	if exists {
		return &user, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	user = r.load(userID, chatID)
	return &user, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.users[user.ID] = *user
	r.mu.Unlock()
	return nil
}

// Update выполняет fn под блокировкой записи
func (r *MemoryUserRepository) Update(ctx context.Context, userID, chatID int64, fn func(*entity.User)) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.load(userID, chatID)
	fn(&user)
	r.users[userID] = user
	return &user, nil
}

// load вызывается под r.mu.Lock
func (r *MemoryUserRepository) load(userID, chatID int64) entity.User {
	if user, exists := r.users[userID]; exists {
		return user
	}
	user := *entity.NewUser(userID, chatID)
	r.users[userID] = user
	return user
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
