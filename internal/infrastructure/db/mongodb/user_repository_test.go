package mongodb

import (
	"context"
	"testing"

	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepository_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewUserRepository(mt.DB)

		user, err := repo.Create(context.Background(), entities.NewUser("u1", "u1@x.com", "hash"))
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.Username)
		assert.Equal(mt, "hash", user.PasswordHash)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: blog.users index: username_unique",
		}))
		repo := NewUserRepository(mt.DB)

		_, err := repo.Create(context.Background(), entities.NewUser("u1", "u1@x.com", "hash"))
		assert.ErrorIs(mt, err, repositories.ErrDuplicate)
	})

	mt.Run("find by username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.users", mtest.FirstBatch, bson.D{
			{Key: "username", Value: "u1"},
			{Key: "email", Value: "u1@x.com"},
			{Key: "password", Value: "hash"},
		}))
		repo := NewUserRepository(mt.DB)

		user, err := repo.FindByUsername(context.Background(), "u1")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, "u1@x.com", user.Email)
		assert.Equal(mt, "hash", user.PasswordHash)
	})

	mt.Run("find by email absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.users", mtest.FirstBatch))
		repo := NewUserRepository(mt.DB)

		user, err := repo.FindByEmail(context.Background(), "nobody@x.com")
		assert.NoError(mt, err)
		assert.Nil(mt, user)
	})
}
