package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/audit"
	"go-jobmatch-backend/pkg/email"
)

type approvalUsecase struct {
	employerRepo domain.EmployerRepository
	userRepo     domain.UserRepository
	notifier     *email.Notifier
	trail        *audit.Trail
}

func NewApprovalUsecase(
	employerRepo domain.EmployerRepository,
	userRepo domain.UserRepository,
	notifier *email.Notifier,
	trail *audit.Trail,
) domain.ApprovalUsecase {
	return &approvalUsecase{
		employerRepo: employerRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		trail:        trail,
	}
}

func (u *approvalUsecase) ListEmployers(ctx context.Context, filter domain.EmployerFilter) ([]domain.EmployerRecord, int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}

	if filter.Status != "" {
		valid := false
		for _, s := range domain.ValidApprovalStatuses {
			if filter.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return nil, 0, apperror.BadRequest("Invalid approval status filter")
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	return u.employerRepo.List(ctx, filter)
}

func (u *approvalUsecase) GetEmployer(ctx context.Context, id int64) (*domain.EmployerRecord, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	rec, err := u.employerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, err
	}
	return rec, nil
}

// Approve moves a pending employer to approved
func (u *approvalUsecase) Approve(ctx context.Context, adminID string, employerID int64) (*domain.EmployerRecord, error) {
	return u.approveFrom(ctx, adminID, employerID, domain.ApprovalStatusPending, domain.ApprovalActionApprove, "approved")
}

// Reapprove moves a rejected employer back to approved. Used both after a
// rejection was reconsidered and after a canceled approval is restored.
func (u *approvalUsecase) Reapprove(ctx context.Context, adminID string, employerID int64) (*domain.EmployerRecord, error) {
	return u.approveFrom(ctx, adminID, employerID, domain.ApprovalStatusRejected, domain.ApprovalActionReapprove, "approved")
}

func (u *approvalUsecase) approveFrom(ctx context.Context, adminID string, employerID int64, fromStatus, action, decision string) (*domain.EmployerRecord, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	rec, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, err
	}
	if rec.ApprovalStatus != fromStatus {
		return nil, apperror.Conflict("Employer is not in " + fromStatus + " status")
	}

	ok, err := u.employerRepo.SetApproved(ctx, employerID, fromStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Another admin action won the race between the read and the update.
		return nil, apperror.Conflict("Employer status changed concurrently, please reload")
	}

	u.trail.Log(audit.Record{
		EmployerID: employerID,
		ActorID:    adminID,
		Action:     action,
		FromStatus: fromStatus,
		ToStatus:   domain.ApprovalStatusApproved,
	})
	u.notifyDecision(ctx, rec, decision, "")

	return u.employerRepo.GetByID(ctx, employerID)
}

// Reject moves a pending employer to rejected. A non-empty reason is required
// so the employer always learns why.
func (u *approvalUsecase) Reject(ctx context.Context, adminID string, employerID int64, reason string) (*domain.EmployerRecord, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.BadRequest("Rejection reason is required")
	}

	rec, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, err
	}
	if rec.ApprovalStatus != domain.ApprovalStatusPending {
		return nil, apperror.Conflict("Only pending employers can be rejected")
	}

	ok, err := u.employerRepo.SetRejected(ctx, employerID, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Conflict("Employer status changed concurrently, please reload")
	}

	u.trail.Log(audit.Record{
		EmployerID: employerID,
		ActorID:    adminID,
		Action:     domain.ApprovalActionReject,
		FromStatus: domain.ApprovalStatusPending,
		ToStatus:   domain.ApprovalStatusRejected,
		Reason:     reason,
	})
	u.notifyDecision(ctx, rec, "rejected", reason)

	return u.employerRepo.GetByID(ctx, employerID)
}

// CancelApproval revokes a previously granted approval. The record lands in
// rejected with the cancellation reason kept separately from any earlier
// rejection reason.
func (u *approvalUsecase) CancelApproval(ctx context.Context, adminID string, employerID int64, reason string) (*domain.EmployerRecord, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.BadRequest("Cancellation reason is required")
	}

	rec, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, err
	}
	if rec.ApprovalStatus != domain.ApprovalStatusApproved {
		return nil, apperror.Conflict("Only approved employers can have approval canceled")
	}

	ok, err := u.employerRepo.SetCanceled(ctx, employerID, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Conflict("Employer status changed concurrently, please reload")
	}

	u.trail.Log(audit.Record{
		EmployerID: employerID,
		ActorID:    adminID,
		Action:     domain.ApprovalActionCancel,
		FromStatus: domain.ApprovalStatusApproved,
		ToStatus:   domain.ApprovalStatusRejected,
		Reason:     reason,
	})
	u.notifyDecision(ctx, rec, "approval canceled", reason)

	return u.employerRepo.GetByID(ctx, employerID)
}

func (u *approvalUsecase) SetHidden(ctx context.Context, adminID string, employerID int64, hidden bool) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	err := u.employerRepo.SetHidden(ctx, employerID, hidden)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Employer not found")
	}
	return err
}

// notifyDecision emails the employer about the decision. Failures are logged
// and never surfaced; the transition has already committed.
func (u *approvalUsecase) notifyDecision(ctx context.Context, rec *domain.EmployerRecord, decision, reason string) {
	if u.notifier == nil || !u.notifier.IsConfigured() {
		return
	}

	user, err := u.userRepo.GetByID(ctx, rec.UserID)
	if err != nil {
		slog.Warn("skipping decision notification, owner lookup failed",
			"employer_id", rec.ID, "error", err)
		return
	}

	go func(to, companyName string) {
		if err := u.notifier.SendApprovalDecision(to, email.ApprovalDecisionData{
			CompanyName: companyName,
			Decision:    decision,
			Reason:      reason,
		}); err != nil {
			slog.Warn("failed to send approval decision email",
				"employer_id", rec.ID, "error", err)
		}
	}(user.Email, rec.Company.Name)
}
