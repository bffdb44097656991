package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
	domainerrors "github.com/mikiasgoitom/Storefront/internal/domain/errors"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser   bool
	ShouldConflict         bool
	ShouldFailLogin        bool
	ShouldFailGetByID      bool
	ShouldFailAuthenticate bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "5f0c7b5e-8a3f-4a63-9a0e-1b2c3d4e5f60",
			Name:     "Coco Liso",
			Username: "cocoliso",
			Email:    "coco@liso.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, username, password string) (*entity.User, error) {
	if m.ShouldConflict {
		return nil, domainerrors.NewConflictError("user with email %s already exists", email)
	}
	if m.ShouldFailCreateUser {
		return nil, errors.New("user creation failed")
	}
	user := m.MockUser
	user.Name, user.Email, user.Username = name, email, username
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", domainerrors.ErrUnauthorized
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate || accessToken != m.MockAccessToken {
		return nil, domainerrors.ErrUnauthorized
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID || userID != m.MockUser.ID {
		return nil, domainerrors.UserNotFound()
	}
	return &m.MockUser, nil
}
