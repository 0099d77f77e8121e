package usecase

import (
	"context"
	"errors"
	"log/slog"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type favoriteUsecase struct {
	favoriteRepo  domain.FavoriteRepository
	employerRepo  domain.EmployerRepository
	portfolioRepo domain.PortfolioRepository
}

func NewFavoriteUsecase(
	favoriteRepo domain.FavoriteRepository,
	employerRepo domain.EmployerRepository,
	portfolioRepo domain.PortfolioRepository,
) domain.FavoriteUsecase {
	return &favoriteUsecase{
		favoriteRepo:  favoriteRepo,
		employerRepo:  employerRepo,
		portfolioRepo: portfolioRepo,
	}
}

// allowKind gates each relation by role: talent favorites are employer-only,
// company favorites are open to job seekers and employers.
func (u *favoriteUsecase) allowKind(ctx context.Context, kind domain.FavoriteKind) error {
	if !kind.IsValid() {
		return apperror.BadRequest("Unknown favorite kind")
	}
	role := currentRole(ctx)
	switch kind {
	case domain.FavoriteTalent:
		if role != domain.RoleEmployer {
			return apperror.Forbidden("Only employers can favorite talents")
		}
	case domain.FavoriteCompany:
		if role != domain.RoleJobSeeker && role != domain.RoleEmployer {
			return apperror.Forbidden("Favoriting companies requires a job seeker or employer account")
		}
	}
	return nil
}

// verifyTarget checks the target exists before adding a favorite, so the
// relation never references a missing record.
func (u *favoriteUsecase) verifyTarget(ctx context.Context, kind domain.FavoriteKind, targetID string) error {
	var err error
	switch kind {
	case domain.FavoriteCompany:
		_, err = u.employerRepo.GetByUserID(ctx, targetID)
	case domain.FavoriteTalent:
		_, err = u.portfolioRepo.GetByUserID(ctx, targetID)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Favorite target not found")
	}
	return err
}

// AddFavorite is idempotent: favoriting an existing favorite succeeds and
// leaves a single membership row.
func (u *favoriteUsecase) AddFavorite(ctx context.Context, userID string, kind domain.FavoriteKind, targetID string) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	userID = ctxUserID

	if err := u.allowKind(ctx, kind); err != nil {
		return err
	}
	if targetID == "" {
		return apperror.BadRequest("Target is required")
	}
	if targetID == userID {
		return apperror.BadRequest("Cannot favorite yourself")
	}
	if err := u.verifyTarget(ctx, kind, targetID); err != nil {
		return err
	}

	if err := u.favoriteRepo.Add(ctx, kind, userID, targetID); err != nil {
		return err
	}

	// Interest signal for the favorited party; a dedicated notification feed
	// can subscribe to this later.
	slog.Debug("favorite added", "kind", string(kind), "user_id", userID, "target_id", targetID)
	return nil
}

// RemoveFavorite of a non-member is a silent no-op
func (u *favoriteUsecase) RemoveFavorite(ctx context.Context, userID string, kind domain.FavoriteKind, targetID string) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	userID = ctxUserID

	if err := u.allowKind(ctx, kind); err != nil {
		return err
	}
	if targetID == "" {
		return apperror.BadRequest("Target is required")
	}
	return u.favoriteRepo.Remove(ctx, kind, userID, targetID)
}

func (u *favoriteUsecase) ListFavorites(ctx context.Context, userID string, kind domain.FavoriteKind) ([]string, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	userID = ctxUserID

	if err := u.allowKind(ctx, kind); err != nil {
		return nil, err
	}
	ids, err := u.favoriteRepo.List(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (u *favoriteUsecase) IsFavorite(ctx context.Context, userID string, kind domain.FavoriteKind, targetID string) (bool, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return false, err
	}
	userID = ctxUserID

	if err := u.allowKind(ctx, kind); err != nil {
		return false, err
	}
	return u.favoriteRepo.Exists(ctx, kind, userID, targetID)
}
