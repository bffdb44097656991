package mocks

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
	domainerrors "github.com/mikiasgoitom/Storefront/internal/domain/errors"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

// MockProductUsecase keeps products in memory and toggles reactions for real,
// so handler tests can observe state across requests.
type MockProductUsecase struct {
	mu sync.Mutex

	ShouldFailToggle bool
	ShouldFailList   bool

	// KnownUsers are the user ids toggles accept; any other id is "user not found".
	KnownUsers map[string]bool
	Products   map[string]*entity.Product
}

var _ usecasecontract.IProductUseCase = (*MockProductUsecase)(nil)

func NewMockProductUsecase(userIDs ...string) *MockProductUsecase {
	known := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		known[id] = true
	}
	return &MockProductUsecase{KnownUsers: known, Products: map[string]*entity.Product{}}
}

// AddProduct seeds a product.
func (m *MockProductUsecase) AddProduct(p entity.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Products[p.ID] = &p
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, name, image, description string) (*entity.Product, error) {
	if name == "" {
		return nil, domainerrors.NewValidationError("invalid product",
			domainerrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	p := entity.Product{
		ID:          "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		Name:        name,
		Image:       image,
		Description: description,
		Likes:       []string{},
		Dislikes:    []string{},
		CreatedAt:   time.Now(),
	}
	m.AddProduct(p)
	return &p, nil
}

func (m *MockProductUsecase) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Products[productID]
	if !ok {
		return nil, domainerrors.ProductNotFound()
	}
	cp := *p
	return &cp, nil
}

// ListProducts pages products by id with the same defaults as the real
// usecase; a page past the end is empty.
func (m *MockProductUsecase) ListProducts(ctx context.Context, page, pageSize int) (*entity.ProductPage, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]entity.Product, 0, len(m.Products))
	for _, p := range m.Products {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	out := []entity.Product{}
	if skip := (int64(page) - 1) * int64(pageSize); skip >= 0 && skip < int64(len(all)) {
		end := min(skip+int64(pageSize), int64(len(all)))
		out = all[skip:end]
	}
	return &entity.ProductPage{Products: out, Page: page, PageSize: pageSize, Total: int64(len(all))}, nil
}

func (m *MockProductUsecase) ToggleLikeProduct(ctx context.Context, userID, productID string) error {
	_, err := m.ToggleReaction(ctx, userID, productID, entity.ReactionLike)
	return err
}

func (m *MockProductUsecase) ToggleDislikeProduct(ctx context.Context, userID, productID string) error {
	_, err := m.ToggleReaction(ctx, userID, productID, entity.ReactionDislike)
	return err
}

func (m *MockProductUsecase) ToggleReaction(ctx context.Context, userID, productID string, kind entity.ReactionType) (entity.ReactionType, error) {
	if m.ShouldFailToggle {
		return entity.ReactionNone, errors.New("toggle failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.KnownUsers[userID] {
		return entity.ReactionNone, domainerrors.UserNotFound()
	}
	p, ok := m.Products[productID]
	if !ok {
		return entity.ReactionNone, domainerrors.ProductNotFound()
	}
	if kind == entity.ReactionDislike {
		p.ToggleDislike(userID)
	} else {
		p.ToggleLike(userID)
	}
	return p.Reaction(userID), nil
}

func (m *MockProductUsecase) GetUserReaction(ctx context.Context, userID, productID string) (entity.ReactionType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.KnownUsers[userID] {
		return entity.ReactionNone, domainerrors.UserNotFound()
	}
	p, ok := m.Products[productID]
	if !ok {
		return entity.ReactionNone, domainerrors.ProductNotFound()
	}
	return p.Reaction(userID), nil
}
