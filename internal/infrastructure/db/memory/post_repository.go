package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostRepository struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]entities.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[primitive.ObjectID]entities.Post)}
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return oid, nil
}

func (r *PostRepository) Create(_ context.Context, post *entities.Post) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	oid := primitive.NewObjectID()
	stored := *post
	stored.ID = oid.Hex()
	stored.CreatedAt = post.CreatedAt.UTC().Truncate(time.Millisecond)
	r.posts[oid] = stored

	out := stored
	return &out, nil
}

// FindAll returns posts in id order. Ids roughly follow creation time.
func (r *PostRepository) FindAll(_ context.Context) ([]*entities.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*entities.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *PostRepository) FindById(_ context.Context, id string) (*entities.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[oid]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PostRepository) Update(_ context.Context, id, title, content string) (*entities.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[oid]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p.Revise(title, content)
	r.posts[oid] = p

	out := p
	return &out, nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[oid]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, oid)
	return nil
}
