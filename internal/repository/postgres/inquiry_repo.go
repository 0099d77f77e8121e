package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type inquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) domain.InquiryRepository {
	return &inquiryRepository{db: db}
}

const inquiryColumns = `
	id, job_seeker_id, employer_id, portfolio_id, position, salary, benefits,
	message, company_snapshot, recruiter_name, recruiter_position,
	status, sent_at, read_at, responded_at, decided_at, response_message`

func scanInquiry(row pgx.Row) (*domain.JobInquiry, error) {
	var inq domain.JobInquiry
	var snapshotJSON []byte
	err := row.Scan(
		&inq.ID, &inq.JobSeekerID, &inq.EmployerID, &inq.PortfolioID,
		&inq.Position, &inq.Salary, &inq.Benefits, &inq.Message,
		&snapshotJSON, &inq.RecruiterName, &inq.RecruiterPosition,
		&inq.Status, &inq.SentAt, &inq.ReadAt, &inq.RespondedAt,
		&inq.DecidedAt, &inq.ResponseMessage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(snapshotJSON) > 0 {
		if err := json.Unmarshal(snapshotJSON, &inq.Company); err != nil {
			return nil, err
		}
	}
	return &inq, nil
}

func (r *inquiryRepository) Create(ctx context.Context, inq *domain.JobInquiry) error {
	snapshotJSON, err := json.Marshal(inq.Company)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO job_inquiries (
			job_seeker_id, employer_id, portfolio_id, position, salary, benefits,
			message, company_snapshot, recruiter_name, recruiter_position,
			status, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, sent_at`

	return r.db.QueryRow(ctx, query,
		inq.JobSeekerID, inq.EmployerID, inq.PortfolioID, inq.Position,
		inq.Salary, inq.Benefits, inq.Message, snapshotJSON,
		inq.RecruiterName, inq.RecruiterPosition, domain.InquiryStatusSent,
	).Scan(&inq.ID, &inq.SentAt)
}

func (r *inquiryRepository) GetByID(ctx context.Context, id int64) (*domain.JobInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM job_inquiries WHERE id = $1`
	return scanInquiry(r.db.QueryRow(ctx, query, id))
}

func (r *inquiryRepository) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]domain.JobInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM job_inquiries WHERE job_seeker_id = $1 ORDER BY sent_at DESC`
	return r.list(ctx, query, jobSeekerID)
}

func (r *inquiryRepository) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM job_inquiries WHERE employer_id = $1 ORDER BY sent_at DESC`
	return r.list(ctx, query, employerID)
}

func (r *inquiryRepository) list(ctx context.Context, query string, arg interface{}) ([]domain.JobInquiry, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.JobInquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, *inq)
	}

	return inquiries, rows.Err()
}

// MarkRead is a CAS update: only a `sent` inquiry can move to `read`.
func (r *inquiryRepository) MarkRead(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE job_inquiries SET status = $1, read_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, query, domain.InquiryStatusRead, id, domain.InquiryStatusSent)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *inquiryRepository) MarkResponded(ctx context.Context, id int64, message string) (bool, error) {
	query := `
		UPDATE job_inquiries SET status = $1, responded_at = NOW(), response_message = $2
		WHERE id = $3 AND status = $4`

	tag, err := r.db.Exec(ctx, query, domain.InquiryStatusResponded, message, id, domain.InquiryStatusRead)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *inquiryRepository) MarkDecided(ctx context.Context, id int64, accepted bool) (bool, error) {
	status := domain.InquiryStatusRejected
	if accepted {
		status = domain.InquiryStatusAccepted
	}

	query := `
		UPDATE job_inquiries SET status = $1, decided_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, query, status, id, domain.InquiryStatusResponded)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
