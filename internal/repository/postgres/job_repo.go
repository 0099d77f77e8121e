package postgres

import (
	"context"
	"errors"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description, salary_min, salary_max, location, employment_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.Location, job.EmploymentType, job.IsActive,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, employer_id, title, description, salary_min, salary_max, location, employment_type, is_active, created_at, updated_at
		FROM jobs WHERE id = $1`

	var j domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax,
		&j.Location, &j.EmploymentType, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// FetchPublicActive joins the employer record so only postings from approved,
// non-hidden employers surface on the public board.
func (r *jobRepository) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE j.is_active = TRUE AND e.approval_status = $1 AND e.is_hidden = FALSE`
	if err := r.db.QueryRow(ctx, countQuery, domain.ApprovalStatusApproved).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.salary_min, j.salary_max,
		       j.location, j.employment_type, j.is_active, j.created_at, j.updated_at,
		       e.company_name, e.location, e.website, e.industry
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE j.is_active = TRUE AND e.approval_status = $1 AND e.is_hidden = FALSE
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, domain.ApprovalStatusApproved, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var j domain.JobWithCompany
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax,
			&j.Location, &j.EmploymentType, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
			&j.CompanyName, &j.CompanyLocation, &j.CompanyWebsite, &j.Industry,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}

	return jobs, total, rows.Err()
}

func (r *jobRepository) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Job, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, employer_id, title, description, salary_min, salary_max, location, employment_type, is_active, created_at, updated_at
		FROM jobs
		WHERE employer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax,
			&j.Location, &j.EmploymentType, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}

	return jobs, total, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $1, description = $2, salary_min = $3, salary_max = $4,
		    location = $5, employment_type = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8`

	tag, err := r.db.Exec(ctx, query,
		job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.Location, job.EmploymentType, job.IsActive, job.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
