package mocks

import (
	"experimenthub/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(email, hashedPassword string) error {
	args := m.Called(email, hashedPassword)
	return args.Error(0)
}

// MockResetOTPRepository is a mock implementation of repository.ResetOTPRepository
type MockResetOTPRepository struct {
	mock.Mock
}

func (m *MockResetOTPRepository) IssueCode(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockResetOTPRepository) VerifyCode(email, code string) (bool, error) {
	args := m.Called(email, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockResetOTPRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// MockExperimentRepository is a mock implementation of repository.ExperimentRepository
type MockExperimentRepository struct {
	mock.Mock
}

func (m *MockExperimentRepository) Create(experiment *models.Experiment) error {
	args := m.Called(experiment)
	return args.Error(0)
}

func (m *MockExperimentRepository) FindAll() ([]models.Experiment, error) {
	args := m.Called()
	return args.Get(0).([]models.Experiment), args.Error(1)
}

func (m *MockExperimentRepository) FindByID(id uint) (*models.Experiment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experiment), args.Error(1)
}

func (m *MockExperimentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMailer is a mock implementation of services.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(recipient, code string) error {
	args := m.Called(recipient, code)
	return args.Error(0)
}
