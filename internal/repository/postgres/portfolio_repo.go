package postgres

import (
	"context"
	"errors"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type portfolioRepository struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) GetByUserID(ctx context.Context, userID string) (*domain.Portfolio, error) {
	query := `
		SELECT user_id, name, speciality, skills, description, image_url,
		       verified, is_public, is_hidden, rating, project_count,
		       registered_at, updated_at
		FROM portfolios WHERE user_id = $1`

	var p domain.Portfolio
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Speciality, &p.Skills, &p.Description, &p.ImageURL,
		&p.Verified, &p.IsPublic, &p.IsHidden, &p.Rating, &p.ProjectCount,
		&p.RegisteredAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert creates or overwrites the projection (1 portfolio per job seeker)
func (r *portfolioRepository) Upsert(ctx context.Context, p *domain.Portfolio) error {
	query := `
		INSERT INTO portfolios (
			user_id, name, speciality, skills, description, image_url,
			verified, is_public, is_hidden, rating, project_count,
			registered_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			speciality = EXCLUDED.speciality,
			skills = EXCLUDED.skills,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			is_public = EXCLUDED.is_public,
			updated_at = NOW()
		RETURNING verified, is_hidden, rating, project_count, registered_at, updated_at`

	return r.db.QueryRow(ctx, query,
		p.UserID, p.Name, p.Speciality, p.Skills, p.Description, p.ImageURL,
		p.Verified, p.IsPublic, p.IsHidden, p.Rating, p.ProjectCount,
	).Scan(&p.Verified, &p.IsHidden, &p.Rating, &p.ProjectCount, &p.RegisteredAt, &p.UpdatedAt)
}

func (r *portfolioRepository) List(ctx context.Context, includeHidden bool, limit, offset int) ([]domain.Portfolio, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM portfolios WHERE is_public = TRUE AND ($1 OR is_hidden = FALSE)`
	if err := r.db.QueryRow(ctx, countQuery, includeHidden).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT user_id, name, speciality, skills, description, image_url,
		       verified, is_public, is_hidden, rating, project_count,
		       registered_at, updated_at
		FROM portfolios
		WHERE is_public = TRUE AND ($1 OR is_hidden = FALSE)
		ORDER BY registered_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, includeHidden, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var portfolios []domain.Portfolio
	for rows.Next() {
		var p domain.Portfolio
		if err := rows.Scan(
			&p.UserID, &p.Name, &p.Speciality, &p.Skills, &p.Description, &p.ImageURL,
			&p.Verified, &p.IsPublic, &p.IsHidden, &p.Rating, &p.ProjectCount,
			&p.RegisteredAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		portfolios = append(portfolios, p)
	}

	return portfolios, total, rows.Err()
}

func (r *portfolioRepository) SetHidden(ctx context.Context, userID string, hidden bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE portfolios SET is_hidden = $1, updated_at = NOW() WHERE user_id = $2`,
		hidden, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RefreshFromProfile re-copies the profile-derived columns into an existing
// portfolio row so a profile edit cannot leave the public projection stale.
// A job seeker without a registered portfolio is a no-op by design.
func (r *portfolioRepository) RefreshFromProfile(ctx context.Context, userID string) error {
	query := `
		UPDATE portfolios p
		SET name = u.name,
		    skills = j.skills,
		    image_url = j.image_url,
		    updated_at = NOW()
		FROM jobseeker_profiles j
		JOIN users u ON u.id = j.user_id
		WHERE p.user_id = $1 AND j.user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	return err
}
