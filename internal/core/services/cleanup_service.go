package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mulozi/api/internal/core/ports"
)

// CleanupService purges expired refresh-token rows. Revocation only needs a
// jti until its token expires, so anything past expiry is dead weight.
type CleanupService struct {
	refresh ports.RefreshTokenRepository
	logger  *slog.Logger
}

func NewCleanupService(refresh ports.RefreshTokenRepository, logger *slog.Logger) *CleanupService {
	return &CleanupService{
		refresh: refresh,
		logger:  logger,
	}
}

func (s *CleanupService) PurgeExpiredTokens(ctx context.Context) error {
	deleted, err := s.refresh.DeleteExpired(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	s.logger.Info("expired refresh tokens purged", "deleted", deleted)
	return nil
}
