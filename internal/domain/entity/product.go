package entity

import (
	"slices"
	"time"
)

// ReactionType is the reaction a user holds on a product.
type ReactionType string

const (
	ReactionNone    ReactionType = "none"
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// Product is a catalogue item users can like or dislike.
// A user id is never present in both Likes and Dislikes.
type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Image       string    `bson:"image" json:"image"`
	Description string    `bson:"description" json:"description"`
	Likes       []string  `bson:"likes" json:"likes"`
	Dislikes    []string  `bson:"dislikes" json:"dislikes"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ToggleDislike flips userID's membership in Dislikes and reports whether
// the product is disliked by userID afterwards. Adding a dislike drops any
// like the user held.
func (p *Product) ToggleDislike(userID string) bool {
	if slices.Contains(p.Dislikes, userID) {
		p.Dislikes = remove(p.Dislikes, userID)
		return false
	}
	p.Likes = remove(p.Likes, userID)
	p.Dislikes = append(p.Dislikes, userID)
	return true
}

// ToggleLike is the mirror of ToggleDislike for Likes.
func (p *Product) ToggleLike(userID string) bool {
	if slices.Contains(p.Likes, userID) {
		p.Likes = remove(p.Likes, userID)
		return false
	}
	p.Dislikes = remove(p.Dislikes, userID)
	p.Likes = append(p.Likes, userID)
	return true
}

// Reaction returns the reaction userID currently holds on the product.
func (p *Product) Reaction(userID string) ReactionType {
	switch {
	case slices.Contains(p.Likes, userID):
		return ReactionLike
	case slices.Contains(p.Dislikes, userID):
		return ReactionDislike
	default:
		return ReactionNone
	}
}

func (p *Product) LikeCount() int    { return len(p.Likes) }
func (p *Product) DislikeCount() int { return len(p.Dislikes) }

// remove returns ids without any occurrence of id. The result is never nil
// so it encodes as an empty BSON array rather than null.
func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ProductPage is one page of a product listing. Page and PageSize are the
// values actually applied, after defaults and caps.
type ProductPage struct {
	Products []Product
	Page     int
	PageSize int
	Total    int64
}

func (p *ProductPage) TotalPages() int64 {
	if p.PageSize < 1 {
		return 0
	}
	return (p.Total + int64(p.PageSize) - 1) / int64(p.PageSize)
}
