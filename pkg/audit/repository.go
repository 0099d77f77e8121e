package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles persistence of audit records to the database
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new repository for audit records
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Persist inserts an audit record
func (r *Repository) Persist(ctx context.Context, rec Record) error {
	query := `
		INSERT INTO approval_audit (
			employer_id, actor_id, action, from_status, to_status, reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		rec.EmployerID,
		rec.ActorID,
		rec.Action,
		rec.FromStatus,
		rec.ToStatus,
		rec.Reason,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to persist audit record: %w", err)
	}

	return nil
}

// ListByEmployer returns the audit trail for one employer, newest first
func (r *Repository) ListByEmployer(ctx context.Context, employerID int64, limit int) ([]Record, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, employer_id, actor_id, action, from_status, to_status, COALESCE(reason, ''), created_at
		FROM approval_audit
		WHERE employer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, employerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployerID, &rec.ActorID, &rec.Action,
			&rec.FromStatus, &rec.ToStatus, &rec.Reason, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
