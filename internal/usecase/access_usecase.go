package usecase

import (
	"context"
	"log/slog"

	"go-jobmatch-backend/internal/domain"
)

type accessUsecase struct {
	userRepo     domain.UserRepository
	employerRepo domain.EmployerRepository
}

func NewAccessUsecase(userRepo domain.UserRepository, employerRepo domain.EmployerRepository) domain.AccessUsecase {
	return &accessUsecase{userRepo: userRepo, employerRepo: employerRepo}
}

// CanAccessPortfolio reports whether userID may browse job seeker portfolios:
// admins always, employers only while approved, everyone else never. Every
// failure path returns false so callers cannot accidentally widen access on a
// store error; the cause is logged here instead of propagated.
func (u *accessUsecase) CanAccessPortfolio(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		slog.Debug("portfolio access denied, user lookup failed", "user_id", userID, "error", err)
		return false
	}

	switch user.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleEmployer:
		rec, err := u.employerRepo.GetByUserID(ctx, userID)
		if err != nil {
			slog.Debug("portfolio access denied, employer lookup failed", "user_id", userID, "error", err)
			return false
		}
		return rec.ApprovalStatus == domain.ApprovalStatusApproved
	default:
		return false
	}
}
