package app

import (
	"context"

	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) {
		u.SetState(state)
	})
}

func (s *UserService) BeginAnalysis(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingImage)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// SetThreshold запоминает порог пользователя; диапазон проверяет вызывающий.
func (s *UserService) SetThreshold(ctx context.Context, userID, chatID int64, threshold int) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) {
		u.SetThreshold(threshold)
	})
}

// ThresholdFor возвращает порог пользователя или fallback, если он не задан.
func (s *UserService) ThresholdFor(user *entity.User, fallback int) int {
	if user != nil && user.HasCustom {
		return user.Threshold
	}
	return fallback
}

// ResetThreshold возвращает пользователю порог по умолчанию.
func (s *UserService) ResetThreshold(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) {
		u.ResetThreshold()
	})
}
