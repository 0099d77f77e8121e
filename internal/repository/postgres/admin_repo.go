package postgres

import (
	"context"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepository{db: db}
}

// GetStats aggregates dashboard counters in one round trip
func (r *adminRepository) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'admin'),
			(SELECT COUNT(*) FROM users WHERE role = 'employer'),
			(SELECT COUNT(*) FROM users WHERE role = 'jobseeker'),
			(SELECT COUNT(*) FROM employers),
			(SELECT COUNT(*) FROM employers WHERE approval_status = 'pending'),
			(SELECT COUNT(*) FROM employers WHERE approval_status = 'approved'),
			(SELECT COUNT(*) FROM employers WHERE approval_status = 'rejected'),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM jobs WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM job_inquiries),
			(SELECT COUNT(*) FROM portfolios)`

	var s domain.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalUsers,
		&s.UsersByRole.Admin,
		&s.UsersByRole.Employer,
		&s.UsersByRole.JobSeeker,
		&s.TotalEmployers,
		&s.EmployersByStatus.Pending,
		&s.EmployersByStatus.Approved,
		&s.EmployersByStatus.Rejected,
		&s.TotalJobs,
		&s.ActiveJobs,
		&s.TotalInquiries,
		&s.TotalPortfolios,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
