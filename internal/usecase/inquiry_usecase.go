package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/email"
)

type inquiryUsecase struct {
	inquiryRepo   domain.InquiryRepository
	employerRepo  domain.EmployerRepository
	portfolioRepo domain.PortfolioRepository
	userRepo      domain.UserRepository
	notifier      *email.Notifier
	validate      *validator.Validate
}

func NewInquiryUsecase(
	inquiryRepo domain.InquiryRepository,
	employerRepo domain.EmployerRepository,
	portfolioRepo domain.PortfolioRepository,
	userRepo domain.UserRepository,
	notifier *email.Notifier,
	validate *validator.Validate,
) domain.InquiryUsecase {
	return &inquiryUsecase{
		inquiryRepo:   inquiryRepo,
		employerRepo:  employerRepo,
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		validate:      validate,
	}
}

// Send creates an inquiry toward one job seeker. Restricted to approved
// employers, and the target must have a registered portfolio; the company
// info is snapshotted into the inquiry at send time.
func (u *inquiryUsecase) Send(ctx context.Context, employerUserID string, req domain.SendInquiryRequest) (*domain.JobInquiry, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := u.employerRepo.GetByUserID(ctx, ctxUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("Sending inquiries requires an employer account")
		}
		return nil, err
	}
	if rec.ApprovalStatus != domain.ApprovalStatusApproved {
		return nil, apperror.Forbidden("Sending inquiries requires an approved employer account")
	}

	portfolio, err := u.portfolioRepo.GetByUserID(ctx, req.JobSeekerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job seeker has no registered portfolio")
		}
		return nil, err
	}

	inq := &domain.JobInquiry{
		JobSeekerID: req.JobSeekerID,
		EmployerID:  rec.ID,
		PortfolioID: portfolio.UserID,
		Position:    req.Position,
		Salary:      req.Salary,
		Benefits:    req.Benefits,
		Message:     req.Message,
		Company: domain.CompanySnapshot{
			Name:     rec.Company.Name,
			Industry: rec.Company.Industry,
			Location: rec.Company.Location,
			Website:  rec.Company.Website,
		},
		RecruiterName:     req.RecruiterName,
		RecruiterPosition: req.RecruiterPosition,
		Status:            domain.InquiryStatusSent,
	}
	if err := u.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}

	u.notifyJobSeeker(ctx, inq, portfolio.Name)
	return inq, nil
}

func (u *inquiryUsecase) ListForJobSeeker(ctx context.Context, userID string) ([]domain.JobInquiry, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return u.inquiryRepo.ListByJobSeeker(ctx, ctxUserID)
}

func (u *inquiryUsecase) ListForEmployer(ctx context.Context, userID string) ([]domain.JobInquiry, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := u.employerRepo.GetByUserID(ctx, ctxUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("Inquiry access requires an employer account")
		}
		return nil, err
	}
	return u.inquiryRepo.ListByEmployer(ctx, rec.ID)
}

// ownInquiry loads an inquiry and verifies the caller is its recipient
func (u *inquiryUsecase) ownInquiry(ctx context.Context, inquiryID int64) (*domain.JobInquiry, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	inq, err := u.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Inquiry not found")
		}
		return nil, err
	}
	if inq.JobSeekerID != ctxUserID {
		return nil, apperror.Forbidden("This inquiry was not sent to you")
	}
	return inq, nil
}

func (u *inquiryUsecase) MarkRead(ctx context.Context, userID string, inquiryID int64) (*domain.JobInquiry, error) {
	inq, err := u.ownInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	ok, err := u.inquiryRepo.MarkRead(ctx, inq.ID)
	if err != nil {
		return nil, err
	}
	if !ok && inq.Status == domain.InquiryStatusSent {
		return nil, apperror.Conflict("Inquiry status changed concurrently, please reload")
	}
	// Re-reading an already-read inquiry is a no-op, not an error.
	return u.inquiryRepo.GetByID(ctx, inq.ID)
}

func (u *inquiryUsecase) Respond(ctx context.Context, userID string, inquiryID int64, message string) (*domain.JobInquiry, error) {
	if message == "" {
		return nil, apperror.BadRequest("Response message is required")
	}

	inq, err := u.ownInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	ok, err := u.inquiryRepo.MarkResponded(ctx, inq.ID, message)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Conflict("Only a read inquiry can be responded to")
	}
	return u.inquiryRepo.GetByID(ctx, inq.ID)
}

func (u *inquiryUsecase) Decide(ctx context.Context, userID string, inquiryID int64, accept bool) (*domain.JobInquiry, error) {
	inq, err := u.ownInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	ok, err := u.inquiryRepo.MarkDecided(ctx, inq.ID, accept)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Conflict("Only a responded inquiry can be decided")
	}
	return u.inquiryRepo.GetByID(ctx, inq.ID)
}

func (u *inquiryUsecase) notifyJobSeeker(ctx context.Context, inq *domain.JobInquiry, jobSeekerName string) {
	if u.notifier == nil || !u.notifier.IsConfigured() {
		return
	}

	user, err := u.userRepo.GetByID(ctx, inq.JobSeekerID)
	if err != nil {
		slog.Warn("skipping inquiry notification, recipient lookup failed",
			"inquiry_id", inq.ID, "error", err)
		return
	}

	go func(to string) {
		if err := u.notifier.SendInquiryNotification(to, email.InquiryNotificationData{
			JobSeekerName: jobSeekerName,
			CompanyName:   inq.Company.Name,
			Position:      inq.Position,
			Message:       inq.Message,
		}); err != nil {
			slog.Warn("failed to send inquiry notification email",
				"inquiry_id", inq.ID, "error", err)
		}
	}(user.Email)
}
