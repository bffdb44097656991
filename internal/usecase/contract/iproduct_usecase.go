package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

type IProductUseCase interface {
	CreateProduct(ctx context.Context, name, image, description string) (*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) (*entity.ProductPage, error)
	ToggleLikeProduct(ctx context.Context, userID, productID string) error
	ToggleDislikeProduct(ctx context.Context, userID, productID string) error
	// ToggleReaction flips one reaction and returns the reaction the user
	// holds once the write has been saved.
	ToggleReaction(ctx context.Context, userID, productID string, kind entity.ReactionType) (entity.ReactionType, error)
	GetUserReaction(ctx context.Context, userID, productID string) (entity.ReactionType, error)
}
