package contract

import (
	"context"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

// IProductCache defines caching operations for product details.
type IProductCache interface {
	GetProduct(ctx context.Context, id string) (*entity.Product, bool, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	InvalidateProduct(ctx context.Context, id string) error
}
