package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Storefront/internal/domain/contract"
	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
	domainerrors "github.com/mikiasgoitom/Storefront/internal/domain/errors"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

const errInternalServer = "internal server error"

// UserUsecase implements the UserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUseCase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, name, email, username, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, domainerrors.NewValidationError("invalid email format",
			domainerrors.ValidationDetail{Field: "email", Message: err.Error()})
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, domainerrors.NewValidationError("weak password",
			domainerrors.ValidationDetail{Field: "password", Message: err.Error()})
	}

	// Check if user with same username or email already exists
	existingUserByEmail, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !domainerrors.IsNotFound(err) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if existingUserByEmail != nil {
		return nil, domainerrors.NewConflictError("user with email %s already exists", email)
	}

	existingUserByUsername, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !domainerrors.IsNotFound(err) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if existingUserByUsername != nil {
		return nil, domainerrors.NewConflictError("user with username %s already exists", username)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, errors.New(errInternalServer)
	}
	uc.logger.Infof("user registered: id=%s username=%s", user.ID, user.Username)
	return user, nil
}

// Login authenticates by email or username and issues an access token.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(email) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, strings.ToLower(email))
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, email)
	}

	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, "", domainerrors.ErrUnauthorized
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", domainerrors.ErrUnauthorized
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, accessToken, nil
}

// Authenticate resolves the user behind an access token.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrUnauthorized, err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}
