package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("invalid approval transition")
	ErrRoleMismatch      = errors.New("operation not allowed for this role")
)

// ApprovalStatus constants. An employer record is always in exactly one of
// these states; `approved` and `rejected` carry a timestamp once reached.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// ValidApprovalStatuses for filter validation
var ValidApprovalStatuses = []string{ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected}

// Approval actions accepted by the admin endpoints
const (
	ApprovalActionApprove   = "approve"
	ApprovalActionReject    = "reject"
	ApprovalActionCancel    = "cancel-approval"
	ApprovalActionReapprove = "reapprove"
)

// CompanyAttraction groups the free-form perk fields shown on the company page
type CompanyAttraction struct {
	Salary      *string `json:"salary,omitempty"`
	Vacation    *string `json:"vacation,omitempty"`
	Welfare     *string `json:"welfare,omitempty"`
	WorkingHour *string `json:"working_hour,omitempty"`
}

// Company is the employer-editable company description
type Company struct {
	Name            string            `json:"name" validate:"required,no_emoji"`
	CEOName         *string           `json:"ceo_name" validate:"omitempty,valid_name"`
	Industry        *string           `json:"industry"`
	BusinessType    *string           `json:"business_type"`
	SizeBucket      *string           `json:"size_bucket"`
	Location        *string           `json:"location"`
	Website         *string           `json:"website" validate:"omitempty,url"`
	Description     *string           `json:"description"`
	ContactName     *string           `json:"contact_name" validate:"omitempty,valid_name"`
	ContactPosition *string           `json:"contact_position"`
	ContactPhone    *string           `json:"contact_phone" validate:"omitempty,valid_phone"`
	Attraction      CompanyAttraction `json:"attraction"`
}

// EmployerRecord represents a company account. Created at employer signup
// with status pending; the status is transitioned only by an admin.
type EmployerRecord struct {
	ID             int64      `json:"id"`
	UserID         string     `json:"user_id"`
	Company        Company    `json:"company"`
	ApprovalStatus string     `json:"approval_status"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	RejectedReason *string    `json:"rejected_reason,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`
	CanceledReason *string    `json:"canceled_reason,omitempty"`
	CanceledAt     *time.Time `json:"canceled_at,omitempty"`
	IsHidden       bool       `json:"is_hidden"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EmployerFilter defines listing options for the admin view
type EmployerFilter struct {
	Status string `json:"status,omitempty"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

// EmployerRepository defines storage operations. The Set* transition methods
// are compare-and-swap updates: they report false when the record was not in
// the expected source status, so concurrent admin actions cannot double-apply
// a transition.
type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*EmployerRecord, error)
	GetByID(ctx context.Context, id int64) (*EmployerRecord, error)
	List(ctx context.Context, filter EmployerFilter) ([]EmployerRecord, int64, error)
	// Upsert creates the record (status pending) or updates the company
	// fields. Approval columns are never touched by Upsert.
	Upsert(ctx context.Context, rec *EmployerRecord) error
	// SetApproved moves fromStatus -> approved, stamps approved_at and clears
	// both reason/timestamp pairs. fromStatus is pending (approve) or
	// rejected (reapprove).
	SetApproved(ctx context.Context, id int64, fromStatus string) (bool, error)
	// SetRejected moves pending -> rejected with a rejection reason.
	SetRejected(ctx context.Context, id int64, reason string) (bool, error)
	// SetCanceled moves approved -> rejected with a cancellation reason,
	// leaving any rejection fields untouched.
	SetCanceled(ctx context.Context, id int64, reason string) (bool, error)
	SetHidden(ctx context.Context, id int64, hidden bool) error
	Delete(ctx context.Context, id int64) error
}

// EmployerUsecase covers the employer's own account
type EmployerUsecase interface {
	GetOwnEmployer(ctx context.Context, userID string) (*EmployerRecord, error)
	UpsertEmployer(ctx context.Context, userID string, company *Company) (*EmployerRecord, error)
}

// ApprovalUsecase is the admin-side approval lifecycle
type ApprovalUsecase interface {
	ListEmployers(ctx context.Context, filter EmployerFilter) ([]EmployerRecord, int64, error)
	GetEmployer(ctx context.Context, id int64) (*EmployerRecord, error)
	Approve(ctx context.Context, adminID string, employerID int64) (*EmployerRecord, error)
	Reject(ctx context.Context, adminID string, employerID int64, reason string) (*EmployerRecord, error)
	CancelApproval(ctx context.Context, adminID string, employerID int64, reason string) (*EmployerRecord, error)
	Reapprove(ctx context.Context, adminID string, employerID int64) (*EmployerRecord, error)
	SetHidden(ctx context.Context, adminID string, employerID int64, hidden bool) error
}
