package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	employerRepo domain.EmployerRepository
}

func NewAuthUsecase(userRepo domain.UserRepository, employerRepo domain.EmployerRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, employerRepo: employerRepo}
}

// EnsureUserExists creates the local user row on first login. The identity
// provider owns credentials; this row only carries role and setup state.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if existing != nil && err == nil {
		return nil // Already provisioned
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	user.IsFirstLogin = true
	user.HasCompletedSetup = false
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CompleteSetup assigns the role exactly once and finishes the first-login
// flow. An employer setup also creates the EmployerRecord in `pending`, which
// is the single entry point into the approval lifecycle.
func (u *authUsecase) CompleteSetup(ctx context.Context, userID, role, name string) (*domain.User, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only complete your own setup")
	}

	if !slices.Contains(domain.ValidRoles, role) {
		return nil, apperror.BadRequest("Role must be jobseeker or employer")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.BadRequest("Display name is required")
	}

	existing, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	if existing.Role != "" && existing.Role != role {
		return nil, apperror.Conflict("Role is already assigned and cannot be changed")
	}

	if err := u.userRepo.CompleteSetup(ctx, userID, role, name); err != nil {
		return nil, err
	}

	if role == domain.RoleEmployer {
		// Skeleton record; the employer fills in company details afterwards.
		// Upsert never touches approval columns, so re-running setup cannot
		// reset an existing status.
		rec := &domain.EmployerRecord{
			UserID:  userID,
			Company: domain.Company{Name: name},
		}
		if err := u.employerRepo.Upsert(ctx, rec); err != nil {
			return nil, err
		}
	}

	return u.userRepo.GetByID(ctx, userID)
}
