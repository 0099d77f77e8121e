package usecase_test

import (
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInquiryUC(inquiryRepo *MockInquiryRepo, employerRepo *MockEmployerRepo, portfolioRepo *MockPortfolioRepo, userRepo *MockUserRepo) domain.InquiryUsecase {
	return usecase.NewInquiryUsecase(inquiryRepo, employerRepo, portfolioRepo, userRepo, nil, newValidator())
}

func TestInquirySend(t *testing.T) {
	req := domain.SendInquiryRequest{
		JobSeekerID: "js1",
		Position:    "Backend Engineer",
		Message:     "We would like to talk",
	}

	t.Run("Requires an employer account", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", mock.Anything, "js2").Return(nil, domain.ErrNotFound)

		uc := newInquiryUC(new(MockInquiryRepo), employerRepo, new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js2", domain.RoleJobSeeker)
		_, err := uc.Send(ctx, "js2", req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "employer account")
	})

	t.Run("Requires approval", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerRecord{ID: 5, UserID: "emp1", ApprovalStatus: domain.ApprovalStatusPending}, nil)

		uc := newInquiryUC(new(MockInquiryRepo), employerRepo, new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		_, err := uc.Send(ctx, "emp1", req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "approved employer")
	})

	t.Run("Requires a registered target portfolio", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		portfolioRepo := new(MockPortfolioRepo)
		employerRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerRecord{ID: 5, UserID: "emp1", ApprovalStatus: domain.ApprovalStatusApproved}, nil)
		portfolioRepo.On("GetByUserID", mock.Anything, "js1").Return(nil, domain.ErrNotFound)

		uc := newInquiryUC(new(MockInquiryRepo), employerRepo, portfolioRepo, new(MockUserRepo))

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		_, err := uc.Send(ctx, "emp1", req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no registered portfolio")
	})

	t.Run("Snapshots company info at send time", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		portfolioRepo := new(MockPortfolioRepo)
		inquiryRepo := new(MockInquiryRepo)

		industry := "Software"
		employerRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerRecord{
				ID:             5,
				UserID:         "emp1",
				ApprovalStatus: domain.ApprovalStatusApproved,
				Company:        domain.Company{Name: "Acme", Industry: &industry},
			}, nil)
		portfolioRepo.On("GetByUserID", mock.Anything, "js1").
			Return(&domain.Portfolio{UserID: "js1", Name: "Jay"}, nil)
		inquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobInquiry")).
			Return(nil).
			Run(func(args mock.Arguments) {
				inq := args.Get(1).(*domain.JobInquiry)
				assert.Equal(t, int64(5), inq.EmployerID)
				assert.Equal(t, "Acme", inq.Company.Name)
				assert.Equal(t, domain.InquiryStatusSent, inq.Status)
			})

		uc := newInquiryUC(inquiryRepo, employerRepo, portfolioRepo, new(MockUserRepo))

		ctx := ctxWithUser("emp1", domain.RoleEmployer)
		inq, err := uc.Send(ctx, "emp1", req)
		assert.NoError(t, err)
		assert.Equal(t, "js1", inq.JobSeekerID)
		inquiryRepo.AssertExpectations(t)
	})
}

func TestInquiryLifecycle(t *testing.T) {
	sentInquiry := func() *domain.JobInquiry {
		return &domain.JobInquiry{ID: 9, JobSeekerID: "js1", EmployerID: 5, Status: domain.InquiryStatusSent}
	}

	t.Run("Only the recipient can act on an inquiry", func(t *testing.T) {
		inquiryRepo := new(MockInquiryRepo)
		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(sentInquiry(), nil)

		uc := newInquiryUC(inquiryRepo, new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js2", domain.RoleJobSeeker)
		_, err := uc.MarkRead(ctx, "js2", 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not sent to you")
	})

	t.Run("Marking read moves sent to read", func(t *testing.T) {
		inquiryRepo := new(MockInquiryRepo)
		read := sentInquiry()
		read.Status = domain.InquiryStatusRead

		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(sentInquiry(), nil).Once()
		inquiryRepo.On("MarkRead", mock.Anything, int64(9)).Return(true, nil)
		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(read, nil)

		uc := newInquiryUC(inquiryRepo, new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		inq, err := uc.MarkRead(ctx, "js1", 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusRead, inq.Status)
	})

	t.Run("Re-reading an already read inquiry is a no-op", func(t *testing.T) {
		inquiryRepo := new(MockInquiryRepo)
		read := sentInquiry()
		read.Status = domain.InquiryStatusRead

		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(read, nil)
		inquiryRepo.On("MarkRead", mock.Anything, int64(9)).Return(false, nil)

		uc := newInquiryUC(inquiryRepo, new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		inq, err := uc.MarkRead(ctx, "js1", 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusRead, inq.Status)
	})

	t.Run("Responding requires the read status", func(t *testing.T) {
		inquiryRepo := new(MockInquiryRepo)
		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(sentInquiry(), nil)
		inquiryRepo.On("MarkResponded", mock.Anything, int64(9), "thanks").Return(false, nil)

		uc := newInquiryUC(inquiryRepo, new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		_, err := uc.Respond(ctx, "js1", 9, "thanks")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only a read inquiry")
	})

	t.Run("Responding requires a message", func(t *testing.T) {
		uc := newInquiryUC(new(MockInquiryRepo), new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		_, err := uc.Respond(ctx, "js1", 9, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "message is required")
	})

	t.Run("Deciding requires the responded status", func(t *testing.T) {
		inquiryRepo := new(MockInquiryRepo)
		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(sentInquiry(), nil)
		inquiryRepo.On("MarkDecided", mock.Anything, int64(9), true).Return(false, nil)

		uc := newInquiryUC(inquiryRepo, new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		_, err := uc.Decide(ctx, "js1", 9, true)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only a responded inquiry")
	})

	t.Run("Accepting a responded inquiry succeeds", func(t *testing.T) {
		inquiryRepo := new(MockInquiryRepo)
		responded := sentInquiry()
		responded.Status = domain.InquiryStatusResponded
		accepted := sentInquiry()
		accepted.Status = domain.InquiryStatusAccepted

		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(responded, nil).Once()
		inquiryRepo.On("MarkDecided", mock.Anything, int64(9), true).Return(true, nil)
		inquiryRepo.On("GetByID", mock.Anything, int64(9)).Return(accepted, nil)

		uc := newInquiryUC(inquiryRepo, new(MockEmployerRepo), new(MockPortfolioRepo), new(MockUserRepo))

		ctx := ctxWithUser("js1", domain.RoleJobSeeker)
		inq, err := uc.Decide(ctx, "js1", 9, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusAccepted, inq.Status)
	})
}
