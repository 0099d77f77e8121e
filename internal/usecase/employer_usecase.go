package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/validation"
)

type employerUsecase struct {
	employerRepo domain.EmployerRepository
	validate     *validator.Validate
}

func NewEmployerUsecase(employerRepo domain.EmployerRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{employerRepo: employerRepo, validate: validate}
}

// GetOwnEmployer returns the caller's record, or an empty pending record for
// an employer who has not filled in company details yet.
func (u *employerUsecase) GetOwnEmployer(ctx context.Context, userID string) (*domain.EmployerRecord, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	userID = ctxUserID

	rec, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.EmployerRecord{
				UserID:         userID,
				ApprovalStatus: domain.ApprovalStatusPending,
			}, nil
		}
		return nil, err
	}
	return rec, nil
}

// UpsertEmployer writes the caller's company details. The owner comes from the
// authenticated context, so an employer can never write another company's
// record. Approval state is untouched by this path.
func (u *employerUsecase) UpsertEmployer(ctx context.Context, userID string, company *domain.Company) (*domain.EmployerRecord, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	userID = ctxUserID

	if currentRole(ctx) != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can edit a company record")
	}

	if err := u.validate.Struct(company); err != nil {
		return nil, apperror.BadRequest(validation.Summary(err))
	}

	rec := &domain.EmployerRecord{
		UserID:  userID,
		Company: *company,
	}
	if err := u.employerRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	return u.employerRepo.GetByUserID(ctx, userID)
}
