package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, name, email, username, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
