package repositories

import (
	"context"

	"blog-service/internal/domain/entities"
)

// PostRepository persists posts.
//
// FindById returns (nil, nil) for a well-formed id with no document and
// ErrInvalidID for an id the store cannot address. Update and Delete return
// ErrNotFound when no document matches.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)
	FindAll(ctx context.Context) ([]*entities.Post, error)
	FindById(ctx context.Context, id string) (*entities.Post, error)
	Update(ctx context.Context, id, title, content string) (*entities.Post, error)
	Delete(ctx context.Context, id string) error
}
