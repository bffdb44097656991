package dto

import (
	"time"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

// CreateProductRequest defines the structure for creating a new product
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Image       string `json:"image" binding:"required"`
	Description string `json:"description" binding:"max=2000"`
}

// ProductResponse defines the standard JSON response for a single product
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	Likes        []string  `json:"likes"`
	Dislikes     []string  `json:"dislikes"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReactionResponse reports the caller's reaction on a product.
type ReactionResponse struct {
	Message  string `json:"message"`
	Reaction string `json:"reaction"`
}

func ToProductResponse(p entity.Product) ProductResponse {
	likes, dislikes := p.Likes, p.Dislikes
	if likes == nil {
		likes = []string{}
	}
	if dislikes == nil {
		dislikes = []string{}
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Description:  p.Description,
		Likes:        likes,
		Dislikes:     dislikes,
		LikeCount:    p.LikeCount(),
		DislikeCount: p.DislikeCount(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProductResponses(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
