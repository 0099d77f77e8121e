package postgres

import (
	"context"
	"errors"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, role, is_first_login, has_completed_setup, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.Role,
		user.IsFirstLogin, user.HasCompletedSetup,
	)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, COALESCE(name, ''), COALESCE(role, ''), is_first_login, has_completed_setup, created_at, updated_at
		FROM users WHERE id = $1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role,
		&u.IsFirstLogin, &u.HasCompletedSetup,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, COALESCE(name, ''), COALESCE(role, ''), is_first_login, has_completed_setup, created_at, updated_at
		FROM users WHERE email = $1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role,
		&u.IsFirstLogin, &u.HasCompletedSetup,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	// Role is immutable after creation and deliberately absent here
	query := `
		UPDATE users SET name = $1, is_first_login = $2, has_completed_setup = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := r.db.Exec(ctx, query, user.Name, user.IsFirstLogin, user.HasCompletedSetup, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) CompleteSetup(ctx context.Context, userID, role, name string) error {
	// The role guard (role IS NULL OR role = '') makes the role write-once:
	// a second setup call can update the name but never switch roles.
	query := `
		UPDATE users
		SET role = CASE WHEN role IS NULL OR role = '' THEN $1 ELSE role END,
		    name = $2,
		    is_first_login = FALSE,
		    has_completed_setup = TRUE,
		    updated_at = NOW()
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, role, name, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
