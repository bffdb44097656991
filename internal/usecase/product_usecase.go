package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mikiasgoitom/Storefront/internal/domain/contract"
	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
	domainerrors "github.com/mikiasgoitom/Storefront/internal/domain/errors"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// maxPage keeps (page-1)*pageSize far inside int64, so the skip handed to
	// the repository is never negative.
	maxPage = math.MaxInt32
)

// ProductUsecase handles product catalogue and reaction logic.
type ProductUsecase struct {
	productRepo  contract.IProductRepository
	userRepo     contract.IUserRepository
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
	productCache contract.IProductCache
}

// NewProductUsecase creates and returns a new ProductUsecase instance.
func NewProductUsecase(
	productRepo contract.IProductRepository,
	userRepo contract.IUserRepository,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		userRepo:    userRepo,
		uuidgen:     uuidgen,
		validator:   validator,
		logger:      logger,
	}
}

var _ usecasecontract.IProductUseCase = (*ProductUsecase)(nil)

// SetProductCache enables the optional product detail cache.
func (u *ProductUsecase) SetProductCache(cache contract.IProductCache) {
	u.productCache = cache
}

// CreateProduct stores a new product with no reactions.
func (u *ProductUsecase) CreateProduct(ctx context.Context, name, image, description string) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	var details []domainerrors.ValidationDetail
	if name == "" {
		details = append(details, domainerrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if err := u.validator.ValidateURL(image); err != nil {
		details = append(details, domainerrors.ValidationDetail{Field: "image", Message: "image must be a valid URL"})
	}
	if len(details) > 0 {
		return nil, domainerrors.NewValidationError("invalid product", details...)
	}

	now := time.Now()
	product := &entity.Product{
		ID:          u.uuidgen.NewUUID(),
		Name:        name,
		Image:       image,
		Description: description,
		Likes:       []string{},
		Dislikes:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.productRepo.CreateProduct(ctx, product); err != nil {
		u.logger.Errorf("failed to create product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// GetProduct retrieves a product by id, going through the cache when one is set.
func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	if u.productCache != nil {
		t0 := time.Now()
		cached, found, err := u.productCache.GetProduct(ctx, productID)
		elapsed := time.Since(t0)
		switch {
		case err == nil && found && cached != nil:
			metrics.IncDetailHit()
			metrics.AddHitDuration(elapsed.Seconds())
			u.logger.Debugf("cache hit: product id=%s took=%s", productID, elapsed)
			return cached, nil
		case err == nil:
			metrics.IncDetailMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			u.logger.Debugf("cache miss: product id=%s took=%s", productID, elapsed)
		default:
			u.logger.Warningf("cache error: product id=%s err=%v took=%s", productID, err, elapsed)
		}
	}

	product, err := u.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if u.productCache != nil {
		if err := u.productCache.SetProduct(ctx, product); err != nil {
			u.logger.Warnf("failed to cache product id=%s: %v", productID, err)
		}
	}
	return product, nil
}

// ListProducts returns one page of products, newest first, and the total count.
// Pages past the end come back empty.
func (u *ProductUsecase) ListProducts(ctx context.Context, page, pageSize int) (*entity.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	skip := (int64(page) - 1) * int64(pageSize)

	products, total, err := u.productRepo.ListProducts(ctx, skip, int64(pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &entity.ProductPage{
		Products: products,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// ToggleDislikeProduct flips userID's dislike on productID. The user is
// looked up before the product, so a missing user wins over a missing product.
func (u *ProductUsecase) ToggleDislikeProduct(ctx context.Context, userID, productID string) error {
	_, err := u.ToggleReaction(ctx, userID, productID, entity.ReactionDislike)
	return err
}

// ToggleLikeProduct flips userID's like on productID.
func (u *ProductUsecase) ToggleLikeProduct(ctx context.Context, userID, productID string) error {
	_, err := u.ToggleReaction(ctx, userID, productID, entity.ReactionLike)
	return err
}

// ToggleReaction flips the like or dislike of userID on productID and returns
// the reaction the saved product holds for userID.
func (u *ProductUsecase) ToggleReaction(ctx context.Context, userID, productID string, kind entity.ReactionType) (entity.ReactionType, error) {
	if kind != entity.ReactionLike && kind != entity.ReactionDislike {
		return entity.ReactionNone, domainerrors.NewValidationError("invalid reaction",
			domainerrors.ValidationDetail{Field: "reaction", Message: "reaction must be like or dislike"})
	}

	if _, err := u.userRepo.GetUserByID(ctx, userID); err != nil {
		return entity.ReactionNone, err
	}

	product, err := u.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return entity.ReactionNone, err
	}

	var active bool
	if kind == entity.ReactionDislike {
		active = product.ToggleDislike(userID)
	} else {
		active = product.ToggleLike(userID)
	}

	if err := u.productRepo.SaveReactions(ctx, product); err != nil {
		u.logger.Errorf("failed to save %s on product %s: %v", kind, productID, err)
		return entity.ReactionNone, fmt.Errorf("failed to save %s reaction: %w", kind, err)
	}

	metrics.IncReaction(string(kind), active)
	u.logger.Infof("product %s %s toggled by user %s: active=%t", productID, kind, userID, active)

	u.refreshCachedProduct(ctx, product)
	return product.Reaction(userID), nil
}

// refreshCachedProduct writes the saved product through to the cache. The
// store keeps whichever copy has the newest UpdatedAt, so a reader that loaded
// the product before this write cannot put the older copy back. If the write
// fails the entry is dropped instead.
func (u *ProductUsecase) refreshCachedProduct(ctx context.Context, product *entity.Product) {
	if u.productCache == nil {
		return
	}
	err := u.productCache.SetProduct(ctx, product)
	if err == nil {
		return
	}
	u.logger.Warnf("failed to refresh product cache id=%s: %v", product.ID, err)
	if err := u.productCache.InvalidateProduct(ctx, product.ID); err != nil {
		u.logger.Warnf("failed to invalidate product cache id=%s: %v", product.ID, err)
	}
}

// GetUserReaction retrieves the reaction a user holds on a product.
func (u *ProductUsecase) GetUserReaction(ctx context.Context, userID, productID string) (entity.ReactionType, error) {
	if _, err := u.userRepo.GetUserByID(ctx, userID); err != nil {
		return entity.ReactionNone, err
	}
	product, err := u.GetProduct(ctx, productID)
	if err != nil {
		return entity.ReactionNone, err
	}
	return product.Reaction(userID), nil
}
