package domain

import "context"

// AdminStats contains dashboard statistics
type AdminStats struct {
	TotalUsers        int64             `json:"totalUsers"`
	UsersByRole       UsersByRole       `json:"usersByRole"`
	TotalEmployers    int64             `json:"totalEmployers"`
	EmployersByStatus EmployersByStatus `json:"employersByStatus"`
	TotalJobs         int64             `json:"totalJobs"`
	ActiveJobs        int64             `json:"activeJobs"`
	TotalInquiries    int64             `json:"totalInquiries"`
	TotalPortfolios   int64             `json:"totalPortfolios"`
}

type UsersByRole struct {
	Admin     int64 `json:"admin"`
	Employer  int64 `json:"employer"`
	JobSeeker int64 `json:"jobseeker"`
}

type EmployersByStatus struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
}
