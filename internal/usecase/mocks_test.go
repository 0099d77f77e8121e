package usecase_test

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
)

// newValidator mirrors the startup wiring so custom tags resolve in tests.
func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) CompleteSetup(ctx context.Context, userID, role, name string) error {
	return m.Called(ctx, userID, role, name).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerRecord), args.Error(1)
}
func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerRecord), args.Error(1)
}
func (m *MockEmployerRepo) List(ctx context.Context, filter domain.EmployerFilter) ([]domain.EmployerRecord, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EmployerRecord), args.Get(1).(int64), args.Error(2)
}
func (m *MockEmployerRepo) Upsert(ctx context.Context, rec *domain.EmployerRecord) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *MockEmployerRepo) SetApproved(ctx context.Context, id int64, fromStatus string) (bool, error) {
	args := m.Called(ctx, id, fromStatus)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployerRepo) SetRejected(ctx context.Context, id int64, reason string) (bool, error) {
	args := m.Called(ctx, id, reason)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployerRepo) SetCanceled(ctx context.Context, id int64, reason string) (bool, error) {
	args := m.Called(ctx, id, reason)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployerRepo) SetHidden(ctx context.Context, id int64, hidden bool) error {
	return m.Called(ctx, id, hidden).Error(0)
}
func (m *MockEmployerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobSeekerRepo struct {
	mock.Mock
}

func (m *MockJobSeekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockJobSeekerRepo) Upsert(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockJobSeekerRepo) SetImageURL(ctx context.Context, userID, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) GetByUserID(ctx context.Context, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockPortfolioRepo) Upsert(ctx context.Context, p *domain.Portfolio) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPortfolioRepo) List(ctx context.Context, includeHidden bool, limit, offset int) ([]domain.Portfolio, int64, error) {
	args := m.Called(ctx, includeHidden, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Portfolio), args.Get(1).(int64), args.Error(2)
}
func (m *MockPortfolioRepo) SetHidden(ctx context.Context, userID string, hidden bool) error {
	return m.Called(ctx, userID, hidden).Error(0)
}
func (m *MockPortfolioRepo) RefreshFromProfile(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID string) error {
	return m.Called(ctx, kind, userID, targetID).Error(0)
}
func (m *MockFavoriteRepo) Remove(ctx context.Context, kind domain.FavoriteKind, userID, targetID string) error {
	return m.Called(ctx, kind, userID, targetID).Error(0)
}
func (m *MockFavoriteRepo) List(ctx context.Context, kind domain.FavoriteKind, userID string) ([]string, error) {
	args := m.Called(ctx, kind, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockFavoriteRepo) Exists(ctx context.Context, kind domain.FavoriteKind, userID, targetID string) (bool, error) {
	args := m.Called(ctx, kind, userID, targetID)
	return args.Bool(0), args.Error(1)
}

type MockInquiryRepo struct {
	mock.Mock
}

func (m *MockInquiryRepo) Create(ctx context.Context, inq *domain.JobInquiry) error {
	return m.Called(ctx, inq).Error(0)
}
func (m *MockInquiryRepo) GetByID(ctx context.Context, id int64) (*domain.JobInquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobInquiry), args.Error(1)
}
func (m *MockInquiryRepo) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]domain.JobInquiry, error) {
	args := m.Called(ctx, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobInquiry), args.Error(1)
}
func (m *MockInquiryRepo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobInquiry, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobInquiry), args.Error(1)
}
func (m *MockInquiryRepo) MarkRead(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockInquiryRepo) MarkResponded(ctx context.Context, id int64, message string) (bool, error) {
	args := m.Called(ctx, id, message)
	return args.Bool(0), args.Error(1)
}
func (m *MockInquiryRepo) MarkDecided(ctx context.Context, id int64, accepted bool) (bool, error) {
	args := m.Called(ctx, id, accepted)
	return args.Bool(0), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Context helpers shared by the tests

func ctxWithUser(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}
