package contract

import (
	"context"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID returns a NotFoundError when no user has the id.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
	DeleteAllUsers(ctx context.Context) (int64, error)
}
