package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) ports.UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
