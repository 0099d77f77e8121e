package postgres

import (
	"context"
	"errors"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepository struct {
	db *pgxpool.Pool
}

// NewEmployerRepository creates a new employer record repository
func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepository{db: db}
}

const employerColumns = `
	id, user_id, company_name, ceo_name, industry, business_type, size_bucket,
	location, website, description, contact_name, contact_position, contact_phone,
	attraction_salary, attraction_vacation, attraction_welfare, attraction_working_hour,
	approval_status, approved_at, rejected_reason, rejected_at,
	canceled_reason, canceled_at, is_hidden, created_at, updated_at`

func scanEmployer(row pgx.Row) (*domain.EmployerRecord, error) {
	var e domain.EmployerRecord
	err := row.Scan(
		&e.ID, &e.UserID, &e.Company.Name, &e.Company.CEOName, &e.Company.Industry,
		&e.Company.BusinessType, &e.Company.SizeBucket, &e.Company.Location,
		&e.Company.Website, &e.Company.Description, &e.Company.ContactName,
		&e.Company.ContactPosition, &e.Company.ContactPhone,
		&e.Company.Attraction.Salary, &e.Company.Attraction.Vacation,
		&e.Company.Attraction.Welfare, &e.Company.Attraction.WorkingHour,
		&e.ApprovalStatus, &e.ApprovedAt, &e.RejectedReason, &e.RejectedAt,
		&e.CanceledReason, &e.CanceledAt, &e.IsHidden, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *employerRepository) GetByUserID(ctx context.Context, userID string) (*domain.EmployerRecord, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE user_id = $1`
	return scanEmployer(r.db.QueryRow(ctx, query, userID))
}

func (r *employerRepository) GetByID(ctx context.Context, id int64) (*domain.EmployerRecord, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`
	return scanEmployer(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepository) List(ctx context.Context, filter domain.EmployerFilter) ([]domain.EmployerRecord, int64, error) {
	offset := (filter.Page - 1) * filter.Limit

	var total int64
	countQuery := `SELECT COUNT(*) FROM employers WHERE ($1 = '' OR approval_status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, filter.Status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employerColumns + `
		FROM employers
		WHERE ($1 = '' OR approval_status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, filter.Status, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.EmployerRecord
	for rows.Next() {
		rec, err := scanEmployer(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}

	return records, total, rows.Err()
}

// Upsert creates the record (status pending) or updates the company fields.
// Approval columns are deliberately excluded from the conflict update so a
// profile edit can never touch the state machine.
func (r *employerRepository) Upsert(ctx context.Context, rec *domain.EmployerRecord) error {
	query := `
		INSERT INTO employers (
			user_id, company_name, ceo_name, industry, business_type, size_bucket,
			location, website, description, contact_name, contact_position, contact_phone,
			attraction_salary, attraction_vacation, attraction_welfare, attraction_working_hour,
			approval_status, is_hidden, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, FALSE, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			ceo_name = EXCLUDED.ceo_name,
			industry = EXCLUDED.industry,
			business_type = EXCLUDED.business_type,
			size_bucket = EXCLUDED.size_bucket,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			description = EXCLUDED.description,
			contact_name = EXCLUDED.contact_name,
			contact_position = EXCLUDED.contact_position,
			contact_phone = EXCLUDED.contact_phone,
			attraction_salary = EXCLUDED.attraction_salary,
			attraction_vacation = EXCLUDED.attraction_vacation,
			attraction_welfare = EXCLUDED.attraction_welfare,
			attraction_working_hour = EXCLUDED.attraction_working_hour,
			updated_at = NOW()
		RETURNING id, approval_status, is_hidden, created_at, updated_at`

	c := rec.Company
	return r.db.QueryRow(ctx, query,
		rec.UserID, c.Name, c.CEOName, c.Industry, c.BusinessType, c.SizeBucket,
		c.Location, c.Website, c.Description, c.ContactName, c.ContactPosition, c.ContactPhone,
		c.Attraction.Salary, c.Attraction.Vacation, c.Attraction.Welfare, c.Attraction.WorkingHour,
		domain.ApprovalStatusPending,
	).Scan(&rec.ID, &rec.ApprovalStatus, &rec.IsHidden, &rec.CreatedAt, &rec.UpdatedAt)
}

// SetApproved is a compare-and-swap: the status predicate in the WHERE clause
// makes the transition safe under concurrent admins (spec: last-write-wins
// races on the same record are rejected, not silently applied).
func (r *employerRepository) SetApproved(ctx context.Context, id int64, fromStatus string) (bool, error) {
	query := `
		UPDATE employers
		SET approval_status = $1,
		    approved_at = NOW(),
		    rejected_reason = NULL, rejected_at = NULL,
		    canceled_reason = NULL, canceled_at = NULL,
		    updated_at = NOW()
		WHERE id = $2 AND approval_status = $3`

	tag, err := r.db.Exec(ctx, query, domain.ApprovalStatusApproved, id, fromStatus)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *employerRepository) SetRejected(ctx context.Context, id int64, reason string) (bool, error) {
	query := `
		UPDATE employers
		SET approval_status = $1,
		    rejected_reason = $2, rejected_at = NOW(),
		    updated_at = NOW()
		WHERE id = $3 AND approval_status = $4`

	tag, err := r.db.Exec(ctx, query, domain.ApprovalStatusRejected, reason, id, domain.ApprovalStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetCanceled re-enters rejected from approved with the cancellation reason
// pair; rejected_reason is left untouched so the two reasons stay distinct.
func (r *employerRepository) SetCanceled(ctx context.Context, id int64, reason string) (bool, error) {
	query := `
		UPDATE employers
		SET approval_status = $1,
		    canceled_reason = $2, canceled_at = NOW(),
		    approved_at = NULL,
		    updated_at = NOW()
		WHERE id = $3 AND approval_status = $4`

	tag, err := r.db.Exec(ctx, query, domain.ApprovalStatusRejected, reason, id, domain.ApprovalStatusApproved)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *employerRepository) SetHidden(ctx context.Context, id int64, hidden bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE employers SET is_hidden = $1, updated_at = NOW() WHERE id = $2`,
		hidden, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
