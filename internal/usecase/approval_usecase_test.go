package usecase_test

import (
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApprovalUC(employerRepo *MockEmployerRepo, userRepo *MockUserRepo) domain.ApprovalUsecase {
	// nil notifier: decision emails are skipped when SMTP is unconfigured
	return usecase.NewApprovalUsecase(employerRepo, userRepo, nil, audit.NewTrail(nil))
}

func pendingEmployer(id int64) *domain.EmployerRecord {
	return &domain.EmployerRecord{
		ID:             id,
		UserID:         "employer-user",
		Company:        domain.Company{Name: "Acme"},
		ApprovalStatus: domain.ApprovalStatusPending,
	}
}

func TestApprovalAdminGate(t *testing.T) {
	uc := newApprovalUC(new(MockEmployerRepo), new(MockUserRepo))

	t.Run("Should reject non-admin callers", func(t *testing.T) {
		ctx := ctxWithUser("user1", domain.RoleEmployer)
		_, err := uc.Approve(ctx, "user1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Admin access required")
	})

	t.Run("Should fail safe when role is missing", func(t *testing.T) {
		_, err := uc.Reapprove(ctxWithUser("user1", ""), "user1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Admin access required")
	})
}

func TestApprove(t *testing.T) {
	ctx := ctxWithUser("admin1", domain.RoleAdmin)

	t.Run("Should approve a pending employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		rec := pendingEmployer(1)
		approved := pendingEmployer(1)
		approved.ApprovalStatus = domain.ApprovalStatusApproved

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(rec, nil).Once()
		employerRepo.On("SetApproved", mock.Anything, int64(1), domain.ApprovalStatusPending).Return(true, nil)
		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(approved, nil)

		result, err := uc.Approve(ctx, "admin1", 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusApproved, result.ApprovalStatus)
	})

	t.Run("Should refuse to approve a non-pending employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		rec := pendingEmployer(1)
		rec.ApprovalStatus = domain.ApprovalStatusApproved
		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(rec, nil)

		_, err := uc.Approve(ctx, "admin1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not in pending status")
	})

	t.Run("Should surface a conflict when the CAS update loses a race", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(pendingEmployer(1), nil)
		employerRepo.On("SetApproved", mock.Anything, int64(1), domain.ApprovalStatusPending).Return(false, nil)

		_, err := uc.Approve(ctx, "admin1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "changed concurrently")
	})

	t.Run("Should report not found for unknown employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		employerRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)

		_, err := uc.Approve(ctx, "admin1", 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Employer not found")
	})
}

func TestReject(t *testing.T) {
	ctx := ctxWithUser("admin1", domain.RoleAdmin)

	t.Run("Should require a non-empty reason", func(t *testing.T) {
		uc := newApprovalUC(new(MockEmployerRepo), new(MockUserRepo))

		_, err := uc.Reject(ctx, "admin1", 1, "   ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})

	t.Run("Should reject a pending employer with the reason", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		rejected := pendingEmployer(1)
		rejected.ApprovalStatus = domain.ApprovalStatusRejected

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(pendingEmployer(1), nil).Once()
		employerRepo.On("SetRejected", mock.Anything, int64(1), "missing registration documents").Return(true, nil)
		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(rejected, nil)

		result, err := uc.Reject(ctx, "admin1", 1, "missing registration documents")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusRejected, result.ApprovalStatus)
	})

	t.Run("Should refuse to reject an approved employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		rec := pendingEmployer(1)
		rec.ApprovalStatus = domain.ApprovalStatusApproved
		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(rec, nil)

		_, err := uc.Reject(ctx, "admin1", 1, "too late")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only pending employers")
	})
}

func TestCancelApproval(t *testing.T) {
	ctx := ctxWithUser("admin1", domain.RoleAdmin)

	t.Run("Should cancel only from approved", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(pendingEmployer(1), nil)

		_, err := uc.CancelApproval(ctx, "admin1", 1, "policy violation")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only approved employers")
	})

	t.Run("Should require a cancellation reason", func(t *testing.T) {
		uc := newApprovalUC(new(MockEmployerRepo), new(MockUserRepo))

		_, err := uc.CancelApproval(ctx, "admin1", 1, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})

	t.Run("Should move an approved employer to rejected with cancellation reason", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		rec := pendingEmployer(1)
		rec.ApprovalStatus = domain.ApprovalStatusApproved

		canceled := pendingEmployer(1)
		canceled.ApprovalStatus = domain.ApprovalStatusRejected
		reason := "policy violation"
		canceled.CanceledReason = &reason

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(rec, nil).Once()
		employerRepo.On("SetCanceled", mock.Anything, int64(1), "policy violation").Return(true, nil)
		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(canceled, nil)

		result, err := uc.CancelApproval(ctx, "admin1", 1, "policy violation")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusRejected, result.ApprovalStatus)
		assert.NotNil(t, result.CanceledReason)
		assert.Nil(t, result.RejectedReason)
	})
}

func TestReapprove(t *testing.T) {
	ctx := ctxWithUser("admin1", domain.RoleAdmin)

	t.Run("Should reapprove a rejected employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		rec := pendingEmployer(1)
		rec.ApprovalStatus = domain.ApprovalStatusRejected

		approved := pendingEmployer(1)
		approved.ApprovalStatus = domain.ApprovalStatusApproved

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(rec, nil).Once()
		employerRepo.On("SetApproved", mock.Anything, int64(1), domain.ApprovalStatusRejected).Return(true, nil)
		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(approved, nil)

		result, err := uc.Reapprove(ctx, "admin1", 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusApproved, result.ApprovalStatus)
		assert.Nil(t, result.RejectedReason)
		assert.Nil(t, result.CanceledReason)
	})

	t.Run("Should refuse to reapprove a pending employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		employerRepo.On("GetByID", mock.Anything, int64(1)).Return(pendingEmployer(1), nil)

		_, err := uc.Reapprove(ctx, "admin1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not in rejected status")
	})
}

func TestListEmployersFilter(t *testing.T) {
	ctx := ctxWithUser("admin1", domain.RoleAdmin)

	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		uc := newApprovalUC(new(MockEmployerRepo), new(MockUserRepo))

		_, _, err := uc.ListEmployers(ctx, domain.EmployerFilter{Status: "verified"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid approval status")
	})

	t.Run("Should normalize pagination defaults", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := newApprovalUC(employerRepo, new(MockUserRepo))

		employerRepo.On("List", mock.Anything, domain.EmployerFilter{Status: "", Page: 1, Limit: 20}).
			Return([]domain.EmployerRecord{}, int64(0), nil)

		_, _, err := uc.ListEmployers(ctx, domain.EmployerFilter{})
		assert.NoError(t, err)
		employerRepo.AssertExpectations(t)
	})
}
