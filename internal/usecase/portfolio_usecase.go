package usecase

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type portfolioUsecase struct {
	portfolioRepo domain.PortfolioRepository
	jobSeekerRepo domain.JobSeekerRepository
	userRepo      domain.UserRepository
	access        domain.AccessUsecase
}

func NewPortfolioUsecase(
	portfolioRepo domain.PortfolioRepository,
	jobSeekerRepo domain.JobSeekerRepository,
	userRepo domain.UserRepository,
	access domain.AccessUsecase,
) domain.PortfolioUsecase {
	return &portfolioUsecase{
		portfolioRepo: portfolioRepo,
		jobSeekerRepo: jobSeekerRepo,
		userRepo:      userRepo,
		access:        access,
	}
}

// Register publishes the owner's portfolio projection. The projection is
// derived from the job seeker profile, which must exist first.
func (u *portfolioUsecase) Register(ctx context.Context, ownerID string, req domain.RegisterPortfolioRequest) (*domain.Portfolio, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	role := currentRole(ctx)

	switch role {
	case domain.RoleAdmin:
		if ownerID == "" {
			return nil, apperror.BadRequest("Portfolio owner is required")
		}
	case domain.RoleJobSeeker:
		ownerID = ctxUserID
	default:
		return nil, apperror.Forbidden("Only job seekers can register a portfolio")
	}

	owner, err := u.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	if owner.Role != domain.RoleJobSeeker {
		return nil, apperror.BadRequest("Portfolios belong to job seeker accounts")
	}

	profile, err := u.jobSeekerRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Complete your profile before registering a portfolio")
		}
		return nil, err
	}

	p := &domain.Portfolio{
		UserID:       ownerID,
		Name:         owner.Name,
		Speciality:   req.Speciality,
		Skills:       profile.Skills,
		Description:  req.Description,
		ImageURL:     profile.ImageURL,
		IsPublic:     req.IsPublic,
		ProjectCount: len(profile.Media),
	}
	if err := u.portfolioRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return u.portfolioRepo.GetByUserID(ctx, ownerID)
}

// Get returns one portfolio. The owner always sees their own, even while
// hidden or private; other viewers go through the access predicate.
func (u *portfolioUsecase) Get(ctx context.Context, viewerID, ownerID string) (*domain.Portfolio, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	viewerID = ctxUserID

	p, err := u.portfolioRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Portfolio not found")
		}
		return nil, err
	}

	if viewerID == ownerID {
		return p, nil
	}

	if !u.access.CanAccessPortfolio(ctx, viewerID) {
		return nil, apperror.Forbidden("Portfolio access requires an approved employer account")
	}
	if p.IsHidden && currentRole(ctx) != domain.RoleAdmin {
		return nil, apperror.NotFound("Portfolio not found")
	}
	if !p.IsPublic {
		return nil, apperror.NotFound("Portfolio not found")
	}
	return p, nil
}

func (u *portfolioUsecase) List(ctx context.Context, viewerID string, page, pageSize int) ([]domain.Portfolio, int64, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, 0, err
	}
	viewerID = ctxUserID

	if !u.access.CanAccessPortfolio(ctx, viewerID) {
		return nil, 0, apperror.Forbidden("Portfolio access requires an approved employer account")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	includeHidden := currentRole(ctx) == domain.RoleAdmin
	return u.portfolioRepo.List(ctx, includeHidden, pageSize, (page-1)*pageSize)
}

func (u *portfolioUsecase) SetHidden(ctx context.Context, adminID, ownerID string, hidden bool) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	err := u.portfolioRepo.SetHidden(ctx, ownerID, hidden)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Portfolio not found")
	}
	return err
}
