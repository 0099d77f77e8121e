package usecase_test

import (
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateProfile(t *testing.T) {
	t.Run("UserID is forced from context", func(t *testing.T) {
		jobSeekerRepo := new(MockJobSeekerRepo)
		portfolioRepo := new(MockPortfolioRepo)

		jobSeekerRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.JobSeekerProfile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.JobSeekerProfile)
				assert.Equal(t, "js1", p.UserID)
			})
		portfolioRepo.On("RefreshFromProfile", mock.Anything, "js1").Return(nil)

		uc := usecase.NewJobSeekerUsecase(jobSeekerRepo, portfolioRepo, newValidator())

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		profile := &domain.JobSeekerProfile{UserID: "hacker_try", Skills: []string{"Go"}}
		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		jobSeekerRepo.AssertExpectations(t)
	})

	t.Run("Profile save triggers portfolio projection refresh", func(t *testing.T) {
		jobSeekerRepo := new(MockJobSeekerRepo)
		portfolioRepo := new(MockPortfolioRepo)

		jobSeekerRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		portfolioRepo.On("RefreshFromProfile", mock.Anything, "js1").Return(nil)

		uc := usecase.NewJobSeekerUsecase(jobSeekerRepo, portfolioRepo, newValidator())

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		err := uc.UpdateProfile(ctx, &domain.JobSeekerProfile{Skills: []string{"Go"}})
		assert.NoError(t, err)
		portfolioRepo.AssertCalled(t, "RefreshFromProfile", mock.Anything, "js1")
	})

	t.Run("Employers cannot edit job seeker profiles", func(t *testing.T) {
		uc := usecase.NewJobSeekerUsecase(new(MockJobSeekerRepo), new(MockPortfolioRepo), newValidator())

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		err := uc.UpdateProfile(ctx, &domain.JobSeekerProfile{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only job seekers")
	})

	t.Run("Fails safe without authentication", func(t *testing.T) {
		uc := usecase.NewJobSeekerUsecase(new(MockJobSeekerRepo), new(MockPortfolioRepo), newValidator())

		err := uc.UpdateProfile(ctxWithUser("", ""), &domain.JobSeekerProfile{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}
