package postgres

import (
	"context"
	"fmt"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type favoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) domain.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// tableFor maps a favorite kind to its join table. Both tables are
// (user_id, target_id) primary keyed, so membership is set semantics and a
// single INSERT/DELETE is atomic under concurrent writers.
func tableFor(kind domain.FavoriteKind) (string, error) {
	switch kind {
	case domain.FavoriteCompany:
		return "favorite_companies", nil
	case domain.FavoriteTalent:
		return "favorite_talents", nil
	default:
		return "", fmt.Errorf("unknown favorite kind: %s", kind)
	}
}

// Add is idempotent: re-adding a present member is absorbed by the conflict
// clause, matching set-union semantics.
func (r *favoriteRepository) Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, target_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, target_id) DO NOTHING`, table)

	_, err = r.db.Exec(ctx, query, userID, targetID)
	return err
}

// Remove of a non-member is a no-op, matching set-difference semantics.
func (r *favoriteRepository) Remove(ctx context.Context, kind domain.FavoriteKind, userID, targetID string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND target_id = $2`, table)
	_, err = r.db.Exec(ctx, query, userID, targetID)
	return err
}

func (r *favoriteRepository) List(ctx context.Context, kind domain.FavoriteKind, userID string) ([]string, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT target_id FROM %s WHERE user_id = $1 ORDER BY created_at DESC`, table)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return targets, rows.Err()
}

func (r *favoriteRepository) Exists(ctx context.Context, kind domain.FavoriteKind, userID, targetID string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE user_id = $1 AND target_id = $2)`, table)
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, targetID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
