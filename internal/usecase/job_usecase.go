package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/validation"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
	validate     *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, employerRepo: employerRepo, validate: validate}
}

// approvedEmployer resolves the caller to an approved employer record. Every
// job write goes through this gate.
func (u *jobUsecase) approvedEmployer(ctx context.Context, userID string) (*domain.EmployerRecord, error) {
	rec, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("Job postings require an employer account")
		}
		return nil, err
	}
	if rec.ApprovalStatus != domain.ApprovalStatusApproved {
		return nil, apperror.Forbidden("Job postings require an approved employer account")
	}
	return rec, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	rec, err := u.approvedEmployer(ctx, ctxUserID)
	if err != nil {
		return err
	}

	job.EmployerID = rec.ID
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(validation.Summary(err))
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListPublicJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return u.jobRepo.FetchPublicActive(ctx, pageSize, (page-1)*pageSize)
}

func (u *jobUsecase) ListOwnJobs(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return nil, 0, err
	}

	rec, err := u.employerRepo.GetByUserID(ctx, ctxUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, apperror.Forbidden("Job postings require an employer account")
		}
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return u.jobRepo.FetchByEmployerID(ctx, rec.ID, pageSize, (page-1)*pageSize)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	rec, err := u.approvedEmployer(ctx, ctxUserID)
	if err != nil {
		return err
	}

	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if existing.EmployerID != rec.ID {
		return apperror.Forbidden("You can only edit your own job postings")
	}

	job.EmployerID = rec.ID
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(validation.Summary(err))
	}

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	ctxUserID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	rec, err := u.employerRepo.GetByUserID(ctx, ctxUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Forbidden("Job postings require an employer account")
		}
		return err
	}

	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if existing.EmployerID != rec.ID {
		return apperror.Forbidden("You can only delete your own job postings")
	}

	return u.jobRepo.Delete(ctx, id)
}
