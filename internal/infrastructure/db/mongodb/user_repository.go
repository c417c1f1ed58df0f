package mongodb

import (
	"context"
	"errors"
	"fmt"

	"blog-service/internal/db"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(database *mongo.Database) repositories.UserRepository {
	return &UserRepository{
		collection: database.Collection(db.UsersCollection),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	model := UserModel{
		Username: user.Username,
		Email:    user.Email,
		Password: user.PasswordHash,
	}

	if _, err := r.collection.InsertOne(ctx, model); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", repositories.ErrDuplicate, err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return model.toEntity(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entities.User, error) {
	var model UserModel
	if err := r.collection.FindOne(ctx, filter).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return model.toEntity(), nil
}
