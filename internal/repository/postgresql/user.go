package postgresql

import (
	"context"
	"fmt"

	"github.com/Core-Staff/core-staff/internal/domain/auth"
	"github.com/Core-Staff/core-staff/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

const userColumns = `id, email, password_hash, google_id, created_at, updated_at`

func scanUser(row pgx.Row) (auth.User, error) {
	var u auth.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GoogleID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID implements auth.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail implements auth.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	user, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByGoogleID implements auth.UserRepository.
func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	user, err := scanUser(q.QueryRow(ctx, query, googleID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by google ID: %w", err)
	}

	return user, nil
}

// Create implements auth.UserRepository.
func (r *userRepository) Create(ctx context.Context, user auth.User) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, google_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.GoogleID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return auth.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LinkGoogleID implements auth.UserRepository.
func (r *userRepository) LinkGoogleID(ctx context.Context, id, googleID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET google_id = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, googleID, id)
	if err != nil {
		return fmt.Errorf("failed to link google ID: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepository{db: db}
}
