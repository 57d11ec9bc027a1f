package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, uuid, first_name, last_name, email, password_hash, role, password_verified, last_login, date_created`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts the record and fills in ID, UUID and DateCreated. The
// unique constraint on email is authoritative: a violation maps to
// domain.ErrEmailExists even when an earlier EmailExists check passed.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (uuid, first_name, last_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_created
	`
	userUUID := uuid.New()
	err := r.db.QueryRowContext(ctx, query,
		userUUID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.DateCreated)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrEmailExists
		}
		return err
	}
	user.UUID = userUUID
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	query := `UPDATE users SET last_login = $2 WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email, at)
	return err
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var lastLogin sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.UUID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.PasswordVerified,
		&lastLogin,
		&user.DateCreated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}
	return user, nil
}
