package domain

import (
	"context"
	"time"
)

// Inquiry status constants. Lifecycle: sent -> read -> responded -> accepted|rejected.
const (
	InquiryStatusSent      = "sent"
	InquiryStatusRead      = "read"
	InquiryStatusResponded = "responded"
	InquiryStatusAccepted  = "accepted"
	InquiryStatusRejected  = "rejected"
)

// CompanySnapshot freezes the employer's company info at send time, so later
// edits to the employer record do not rewrite history.
type CompanySnapshot struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// JobInquiry is an employer's outreach to one job seeker's portfolio
type JobInquiry struct {
	ID                int64           `json:"id"`
	JobSeekerID       string          `json:"job_seeker_id"`
	EmployerID        int64           `json:"employer_id"`
	PortfolioID       string          `json:"portfolio_id"` // portfolio owner user id
	Position          string          `json:"position"`
	Salary            *string         `json:"salary,omitempty"`
	Benefits          *string         `json:"benefits,omitempty"`
	Message           string          `json:"message"`
	Company           CompanySnapshot `json:"company"`
	RecruiterName     *string         `json:"recruiter_name,omitempty"`
	RecruiterPosition *string         `json:"recruiter_position,omitempty"`
	Status            string          `json:"status"`
	SentAt            time.Time       `json:"sent_at"`
	ReadAt            *time.Time      `json:"read_at,omitempty"`
	RespondedAt       *time.Time      `json:"responded_at,omitempty"`
	DecidedAt         *time.Time      `json:"decided_at,omitempty"`
	ResponseMessage   *string         `json:"response_message,omitempty"`
}

// SendInquiryRequest is the employer-side payload
type SendInquiryRequest struct {
	JobSeekerID       string  `json:"job_seeker_id" binding:"required"`
	Position          string  `json:"position" binding:"required"`
	Salary            *string `json:"salary"`
	Benefits          *string `json:"benefits"`
	Message           string  `json:"message" binding:"required"`
	RecruiterName     *string `json:"recruiter_name"`
	RecruiterPosition *string `json:"recruiter_position"`
}

// InquiryRepository defines data access. The Mark* methods are CAS updates on
// the status column and report false when the inquiry was not in the expected
// source status.
type InquiryRepository interface {
	Create(ctx context.Context, inq *JobInquiry) error
	GetByID(ctx context.Context, id int64) (*JobInquiry, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]JobInquiry, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]JobInquiry, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
	MarkResponded(ctx context.Context, id int64, message string) (bool, error)
	MarkDecided(ctx context.Context, id int64, accepted bool) (bool, error)
}

type InquiryUsecase interface {
	// Send is an employer action, allowed only for approved employers and only
	// toward job seekers with a registered portfolio.
	Send(ctx context.Context, employerUserID string, req SendInquiryRequest) (*JobInquiry, error)
	ListForJobSeeker(ctx context.Context, userID string) ([]JobInquiry, error)
	ListForEmployer(ctx context.Context, userID string) ([]JobInquiry, error)
	// Job-seeker side lifecycle
	MarkRead(ctx context.Context, userID string, inquiryID int64) (*JobInquiry, error)
	Respond(ctx context.Context, userID string, inquiryID int64, message string) (*JobInquiry, error)
	Decide(ctx context.Context, userID string, inquiryID int64, accept bool) (*JobInquiry, error)
}
