package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/validation"
)

type jobSeekerUsecase struct {
	jobSeekerRepo domain.JobSeekerRepository
	portfolioRepo domain.PortfolioRepository
	validate      *validator.Validate
}

func NewJobSeekerUsecase(
	jobSeekerRepo domain.JobSeekerRepository,
	portfolioRepo domain.PortfolioRepository,
	validate *validator.Validate,
) domain.JobSeekerUsecase {
	return &jobSeekerUsecase{
		jobSeekerRepo: jobSeekerRepo,
		portfolioRepo: portfolioRepo,
		validate:      validate,
	}
}

func (u *jobSeekerUsecase) GetProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	// Admin may view any profile; everyone else only their own.
	if userID == "" || currentRole(ctx) != domain.RoleAdmin {
		userID = ctxUserID
	}

	profile, err := u.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile saves the caller's profile and re-syncs the portfolio
// projection so a registered portfolio never drifts from the profile it was
// derived from.
func (u *jobSeekerUsecase) UpdateProfile(ctx context.Context, profile *domain.JobSeekerProfile) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	if currentRole(ctx) != domain.RoleJobSeeker {
		return apperror.Forbidden("Only job seekers can edit a profile")
	}

	// Force ownership from the authenticated context
	profile.UserID = ctxUserID
	profile.UpdatedAt = time.Now()

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.Summary(err))
	}

	if err := u.jobSeekerRepo.Upsert(ctx, profile); err != nil {
		return err
	}

	if err := u.portfolioRepo.RefreshFromProfile(ctx, ctxUserID); err != nil {
		// The profile write succeeded; projection sync catches up on the next
		// update, so log rather than fail the request.
		slog.Warn("failed to refresh portfolio projection", "user_id", ctxUserID, "error", err)
	}
	return nil
}

func (u *jobSeekerUsecase) SetProfileImage(ctx context.Context, userID, url string) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	if err := u.jobSeekerRepo.SetImageURL(ctx, ctxUserID, url); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}

	if err := u.portfolioRepo.RefreshFromProfile(ctx, ctxUserID); err != nil {
		slog.Warn("failed to refresh portfolio projection", "user_id", ctxUserID, "error", err)
	}
	return nil
}
