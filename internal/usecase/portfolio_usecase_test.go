package usecase_test

import (
	"context"
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPortfolioUC(portfolioRepo *MockPortfolioRepo, jobSeekerRepo *MockJobSeekerRepo, userRepo *MockUserRepo, access domain.AccessUsecase) domain.PortfolioUsecase {
	return usecase.NewPortfolioUsecase(portfolioRepo, jobSeekerRepo, userRepo, access)
}

// allowAll / denyAll stand in for the access predicate with canned answers
type allowAll struct{}

func (allowAll) CanAccessPortfolio(ctx context.Context, userID string) bool { return true }

type denyAll struct{}

func (denyAll) CanAccessPortfolio(ctx context.Context, userID string) bool { return false }

func TestPortfolioGet(t *testing.T) {
	ownPortfolio := &domain.Portfolio{
		UserID:   "owner1",
		Name:     "Owner",
		IsPublic: false,
		IsHidden: true,
	}

	t.Run("Owner sees their own portfolio even when hidden and private", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		portfolioRepo.On("GetByUserID", mock.Anything, "owner1").Return(ownPortfolio, nil)

		uc := newPortfolioUC(portfolioRepo, new(MockJobSeekerRepo), new(MockUserRepo), denyAll{})

		ctx := ctxWithUser("owner1", domain.RoleJobSeeker)
		p, err := uc.Get(ctx, "owner1", "owner1")
		assert.NoError(t, err)
		assert.Equal(t, "owner1", p.UserID)
	})

	t.Run("Viewer without access is denied", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		portfolioRepo.On("GetByUserID", mock.Anything, "owner1").
			Return(&domain.Portfolio{UserID: "owner1", IsPublic: true}, nil)

		uc := newPortfolioUC(portfolioRepo, new(MockJobSeekerRepo), new(MockUserRepo), denyAll{})

		ctx := ctxWithUser("viewer1", domain.RoleEmployer)
		_, err := uc.Get(ctx, "viewer1", "owner1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "approved employer")
	})

	t.Run("Hidden portfolio reads as not found for non-admin viewers", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		portfolioRepo.On("GetByUserID", mock.Anything, "owner1").
			Return(&domain.Portfolio{UserID: "owner1", IsPublic: true, IsHidden: true}, nil)

		uc := newPortfolioUC(portfolioRepo, new(MockJobSeekerRepo), new(MockUserRepo), allowAll{})

		ctx := ctxWithUser("viewer1", domain.RoleEmployer)
		_, err := uc.Get(ctx, "viewer1", "owner1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Admin sees hidden portfolios", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		portfolioRepo.On("GetByUserID", mock.Anything, "owner1").
			Return(&domain.Portfolio{UserID: "owner1", IsPublic: true, IsHidden: true}, nil)

		uc := newPortfolioUC(portfolioRepo, new(MockJobSeekerRepo), new(MockUserRepo), allowAll{})

		ctx := ctxWithUser("admin1", domain.RoleAdmin)
		p, err := uc.Get(ctx, "admin1", "owner1")
		assert.NoError(t, err)
		assert.True(t, p.IsHidden)
	})
}

func TestPortfolioRegister(t *testing.T) {
	t.Run("Employer cannot register a portfolio", func(t *testing.T) {
		uc := newPortfolioUC(new(MockPortfolioRepo), new(MockJobSeekerRepo), new(MockUserRepo), allowAll{})

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		_, err := uc.Register(ctx, "", domain.RegisterPortfolioRequest{Speciality: "Backend"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only job seekers")
	})

	t.Run("Registration requires an existing profile", func(t *testing.T) {
		jobSeekerRepo := new(MockJobSeekerRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "js1").
			Return(&domain.User{ID: "js1", Name: "Jay", Role: domain.RoleJobSeeker}, nil)
		jobSeekerRepo.On("GetByUserID", mock.Anything, "js1").Return(nil, domain.ErrNotFound)

		uc := newPortfolioUC(new(MockPortfolioRepo), jobSeekerRepo, userRepo, allowAll{})

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		_, err := uc.Register(ctx, "", domain.RegisterPortfolioRequest{Speciality: "Backend"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Complete your profile")
	})

	t.Run("Projection is derived from the profile", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		jobSeekerRepo := new(MockJobSeekerRepo)
		userRepo := new(MockUserRepo)

		userRepo.On("GetByID", mock.Anything, "js1").
			Return(&domain.User{ID: "js1", Name: "Jay", Role: domain.RoleJobSeeker}, nil)
		jobSeekerRepo.On("GetByUserID", mock.Anything, "js1").
			Return(&domain.JobSeekerProfile{
				UserID: "js1",
				Skills: []string{"Go", "Postgres"},
				Media:  []domain.MediaItem{{Kind: "image", URL: "https://example.com/1.png"}},
			}, nil)

		portfolioRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Portfolio")).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Portfolio)
				assert.Equal(t, "js1", p.UserID)
				assert.Equal(t, "Jay", p.Name)
				assert.Equal(t, []string{"Go", "Postgres"}, p.Skills)
				assert.Equal(t, 1, p.ProjectCount)
			})
		portfolioRepo.On("GetByUserID", mock.Anything, "js1").
			Return(&domain.Portfolio{UserID: "js1", Name: "Jay"}, nil)

		uc := newPortfolioUC(portfolioRepo, jobSeekerRepo, userRepo, allowAll{})

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		p, err := uc.Register(ctx, "", domain.RegisterPortfolioRequest{Speciality: "Backend", IsPublic: true})
		assert.NoError(t, err)
		assert.Equal(t, "js1", p.UserID)
		portfolioRepo.AssertExpectations(t)
	})
}

func TestPortfolioList(t *testing.T) {
	t.Run("Denied viewer cannot list", func(t *testing.T) {
		uc := newPortfolioUC(new(MockPortfolioRepo), new(MockJobSeekerRepo), new(MockUserRepo), denyAll{})

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		_, _, err := uc.List(ctx, "js1", 1, 20)
		assert.Error(t, err)
	})

	t.Run("Admin listing includes hidden portfolios", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		portfolioRepo.On("List", mock.Anything, true, 20, 0).
			Return([]domain.Portfolio{}, int64(0), nil)

		uc := newPortfolioUC(portfolioRepo, new(MockJobSeekerRepo), new(MockUserRepo), allowAll{})

		ctx := ctxWithUser("admin1", domain.RoleAdmin)
		_, _, err := uc.List(ctx, "admin1", 1, 20)
		assert.NoError(t, err)
		portfolioRepo.AssertExpectations(t)
	})

	t.Run("Employer listing excludes hidden portfolios", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		portfolioRepo.On("List", mock.Anything, false, 20, 0).
			Return([]domain.Portfolio{}, int64(0), nil)

		uc := newPortfolioUC(portfolioRepo, new(MockJobSeekerRepo), new(MockUserRepo), allowAll{})

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		_, _, err := uc.List(ctx, "emp1", 1, 20)
		assert.NoError(t, err)
		portfolioRepo.AssertExpectations(t)
	})
}
