package usecase_test

import (
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteRoleGating(t *testing.T) {
	uc := usecase.NewFavoriteUsecase(new(MockFavoriteRepo), new(MockEmployerRepo), new(MockPortfolioRepo))

	t.Run("Job seeker cannot favorite talents", func(t *testing.T) {
		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		err := uc.AddFavorite(ctx, "js1", domain.FavoriteTalent, "other")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers can favorite talents")
	})

	t.Run("Admin cannot favorite companies", func(t *testing.T) {
		ctx := ctxWithUser("admin1", domain.RoleAdmin)
		err := uc.AddFavorite(ctx, "admin1", domain.FavoriteCompany, "other")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "job seeker or employer account")
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		err := uc.AddFavorite(ctx, "js1", domain.FavoriteKind("job"), "other")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown favorite kind")
	})

	t.Run("Unauthenticated caller is rejected", func(t *testing.T) {
		err := uc.AddFavorite(ctxWithUser("", ""), "", domain.FavoriteCompany, "other")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestAddFavorite(t *testing.T) {
	t.Run("Job seeker can favorite an existing company", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewFavoriteUsecase(favoriteRepo, employerRepo, new(MockPortfolioRepo))

		employerRepo.On("GetByUserID", mock.Anything, "company-owner").
			Return(&domain.EmployerRecord{UserID: "company-owner"}, nil)
		favoriteRepo.On("Add", mock.Anything, domain.FavoriteCompany, "js1", "company-owner").Return(nil)

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		err := uc.AddFavorite(ctx, "js1", domain.FavoriteCompany, "company-owner")
		assert.NoError(t, err)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("Employer can favorite a registered talent", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		portfolioRepo := new(MockPortfolioRepo)
		uc := usecase.NewFavoriteUsecase(favoriteRepo, new(MockEmployerRepo), portfolioRepo)

		portfolioRepo.On("GetByUserID", mock.Anything, "js1").
			Return(&domain.Portfolio{UserID: "js1"}, nil)
		favoriteRepo.On("Add", mock.Anything, domain.FavoriteTalent, "emp1", "js1").Return(nil)

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		err := uc.AddFavorite(ctx, "emp1", domain.FavoriteTalent, "js1")
		assert.NoError(t, err)
	})

	t.Run("Missing target reports not found", func(t *testing.T) {
		portfolioRepo := new(MockPortfolioRepo)
		uc := usecase.NewFavoriteUsecase(new(MockFavoriteRepo), new(MockEmployerRepo), portfolioRepo)

		portfolioRepo.On("GetByUserID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		err := uc.AddFavorite(ctx, "emp1", domain.FavoriteTalent, "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "target not found")
	})

	t.Run("Self-favorite is rejected", func(t *testing.T) {
		uc := usecase.NewFavoriteUsecase(new(MockFavoriteRepo), new(MockEmployerRepo), new(MockPortfolioRepo))

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		err := uc.AddFavorite(ctx, "emp1", domain.FavoriteCompany, "emp1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot favorite yourself")
	})

	t.Run("Caller identity is forced from context", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewFavoriteUsecase(favoriteRepo, employerRepo, new(MockPortfolioRepo))

		employerRepo.On("GetByUserID", mock.Anything, "company-owner").
			Return(&domain.EmployerRecord{UserID: "company-owner"}, nil)
		// The spoofed "victim" user id must never reach the repository
		favoriteRepo.On("Add", mock.Anything, domain.FavoriteCompany, "js1", "company-owner").Return(nil)

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		err := uc.AddFavorite(ctx, "victim", domain.FavoriteCompany, "company-owner")
		assert.NoError(t, err)
		favoriteRepo.AssertExpectations(t)
	})
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("Removing a non-member is a silent no-op", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		uc := usecase.NewFavoriteUsecase(favoriteRepo, new(MockEmployerRepo), new(MockPortfolioRepo))

		favoriteRepo.On("Remove", mock.Anything, domain.FavoriteCompany, "js1", "never-favorited").Return(nil)

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		err := uc.RemoveFavorite(ctx, "js1", domain.FavoriteCompany, "never-favorited")
		assert.NoError(t, err)
	})
}

func TestListFavorites(t *testing.T) {
	t.Run("Empty list is returned as empty slice", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		uc := usecase.NewFavoriteUsecase(favoriteRepo, new(MockEmployerRepo), new(MockPortfolioRepo))

		favoriteRepo.On("List", mock.Anything, domain.FavoriteCompany, "js1").Return(nil, nil)

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		ids, err := uc.ListFavorites(ctx, "js1", domain.FavoriteCompany)
		assert.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})
}
