package domain

import (
	"context"
	"time"
)

type Job struct {
	ID             int64     `json:"id"`
	EmployerID     int64     `json:"employer_id"`
	Title          string    `json:"title" validate:"required,min=3,max=150"`
	Description    string    `json:"description" validate:"required"`
	SalaryMin      *int64    `json:"salary_min,omitempty"`
	SalaryMax      *int64    `json:"salary_max,omitempty"`
	Location       *string   `json:"location,omitempty"`
	EmploymentType *string   `json:"employment_type,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobWithCompany extends Job with company fields for public listings
type JobWithCompany struct {
	Job
	CompanyName     string  `json:"company_name"`
	CompanyLocation *string `json:"company_location,omitempty"`
	CompanyWebsite  *string `json:"company_website,omitempty"`
	Industry        *string `json:"industry,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// FetchPublicActive lists active jobs from approved, non-hidden employers.
	FetchPublicActive(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListPublicJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListOwnJobs(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
