package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

type RefreshTokenRepository struct {
	db *sql.DB
}

func NewRefreshTokenRepository(db *sql.DB) ports.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Store(ctx context.Context, token *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (user_uuid, jti, revoked, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, token.UserUUID, token.JTI, token.Revoked, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt)
}

func (r *RefreshTokenRepository) GetByJTI(ctx context.Context, jti uuid.UUID) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_uuid, jti, revoked, expires_at, created_at
		FROM refresh_tokens
		WHERE jti = $1
	`
	token := &domain.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, jti).Scan(
		&token.ID,
		&token.UserUUID,
		&token.JTI,
		&token.Revoked,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, jti uuid.UUID) error {
	query := `UPDATE refresh_tokens SET revoked = true WHERE jti = $1`
	_, err := r.db.ExecContext(ctx, query, jti)
	return err
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at < $1`
	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
