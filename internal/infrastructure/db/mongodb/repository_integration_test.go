package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"blog-service/internal/db"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupLiveDatabase connects to MONGODB_TEST_URI and returns a throwaway
// database that is dropped on cleanup.
func setupLiveDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, uri, 5*time.Second)
	require.NoError(t, err)

	database := client.Database(fmt.Sprintf("blog_test_%d", time.Now().UnixNano()))
	require.NoError(t, db.EnsureIndexes(ctx, database))

	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return database
}

func TestIntegration_UserUniqueIndexes(t *testing.T) {
	database := setupLiveDatabase(t)
	ctx := context.Background()
	repo := NewUserRepository(database)

	_, err := repo.Create(ctx, entities.NewUser("u1", "u1@x.com", "hash"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.NewUser("u1", "other@x.com", "hash"))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	_, err = repo.Create(ctx, entities.NewUser("u2", "u1@x.com", "hash"))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	user, err := repo.FindByEmail(ctx, "u1@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.Username)
}

func TestIntegration_PostLifecycle(t *testing.T) {
	database := setupLiveDatabase(t)
	ctx := context.Background()
	repo := NewPostRepository(database)

	post, err := repo.Create(ctx, entities.NewPost("T", "C", "alice", time.Now()))
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, post.ID, all[0].ID)

	updated, err := repo.Update(ctx, post.ID, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, post.CreatedAt.Unix(), updated.CreatedAt.Unix())

	require.NoError(t, repo.Delete(ctx, post.ID))
	found, err := repo.FindById(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID().Hex()), repositories.ErrNotFound)
}
