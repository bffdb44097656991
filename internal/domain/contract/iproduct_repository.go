package contract

import (
	"context"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

// IProductRepository defines the interface for product persistence.
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	// GetProductByID returns a NotFoundError when no product has the id.
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	ListProducts(ctx context.Context, skip, limit int64) ([]entity.Product, int64, error)
	// SaveReactions persists the product's likes and dislikes in a single write.
	SaveReactions(ctx context.Context, product *entity.Product) error
	DeleteAllProducts(ctx context.Context) (int64, error)
}
