package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Storefront/internal/domain/contract"
	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
	domainerrors "github.com/mikiasgoitom/Storefront/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository is the MongoDB implementation of IProductRepository.
type ProductRepository struct {
	collection *mongo.Collection
}

var _ contract.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if product.Likes == nil {
		product.Likes = []string{}
	}
	if product.Dislikes == nil {
		product.Dislikes = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ProductNotFound()
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &product, nil
}

// ListProducts returns products newest first along with the collection size.
func (r *ProductRepository) ListProducts(ctx context.Context, skip, limit int64) ([]entity.Product, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]entity.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, total, nil
}

// SaveReactions overwrites likes and dislikes with the in-memory sets.
// Concurrent writers on the same product are last-write-wins.
func (r *ProductRepository) SaveReactions(ctx context.Context, product *entity.Product) error {
	likes, dislikes := product.Likes, product.Dislikes
	if likes == nil {
		likes = []string{}
	}
	if dislikes == nil {
		dislikes = []string{}
	}
	product.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"likes":      likes,
		"dislikes":   dislikes,
		"updated_at": product.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to save reactions: %w", err)
	}
	if res.MatchedCount == 0 {
		return domainerrors.ProductNotFound()
	}
	return nil
}

// DeleteAllProducts empties the collection. Used by administrative cleanup and tests.
func (r *ProductRepository) DeleteAllProducts(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return res.DeletedCount, nil
}
