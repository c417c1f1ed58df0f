package memory

import (
	"context"
	"testing"
	"time"

	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, entities.NewUser("u1", "u1@x.com", "hash"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.NewUser("u1", "other@x.com", "hash"))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	_, err = repo.Create(ctx, entities.NewUser("u2", "u1@x.com", "hash"))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestUserRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, err := repo.Create(ctx, entities.NewUser("u1", "u1@x.com", "hash"))
	require.NoError(t, err)

	byName, err := repo.FindByUsername(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, "u1@x.com", byName.Email)

	byEmail, err := repo.FindByEmail(ctx, "u1@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.Username)

	missing, err := repo.FindByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()
	created := time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.UTC)

	post, err := repo.Create(ctx, entities.NewPost("T", "C", "alice", created))
	require.NoError(t, err)
	assert.True(t, primitive.IsValidObjectID(post.ID))
	assert.Equal(t, created.Truncate(time.Millisecond), post.CreatedAt)

	found, err := repo.FindById(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "T", found.Title)

	updated, err := repo.Update(ctx, post.ID, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, "alice", updated.Author)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, post.ID))

	found, err = repo.FindById(ctx, post.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestPostRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()
	absent := primitive.NewObjectID().Hex()

	_, err := repo.FindById(ctx, "invalid_id")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
	_, err = repo.Update(ctx, "invalid_id", "t", "c")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
	assert.ErrorIs(t, repo.Delete(ctx, "invalid_id"), repositories.ErrInvalidID)

	_, err = repo.Update(ctx, absent, "t", "c")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, absent), repositories.ErrNotFound)
}

func TestPostRepository_FindAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, entities.NewPost(title, "content", "alice", time.Now()))
		require.NoError(t, err)
	}

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	titles := []string{posts[0].Title, posts[1].Title, posts[2].Title}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, titles)

	posts[0].Title = "mutated"
	again, err := repo.FindById(ctx, posts[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title)
}
