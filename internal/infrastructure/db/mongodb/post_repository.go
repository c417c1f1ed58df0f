package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-service/internal/db"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(database *mongo.Database) repositories.PostRepository {
	return &PostRepository{
		collection: database.Collection(db.PostsCollection),
	}
}

// parseID converts a hex string into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return oid, nil
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	model := PostModel{
		Id:        primitive.NewObjectID(),
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		Timestamp: post.CreatedAt.UTC().Truncate(time.Millisecond),
	}

	if _, err := r.collection.InsertOne(ctx, model); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*entities.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}

	var models []PostModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]*entities.Post, 0, len(models))
	for i := range models {
		posts = append(posts, models[i].toEntity())
	}
	return posts, nil
}

func (r *PostRepository) FindById(ctx context.Context, id string) (*entities.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var model PostModel
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostRepository) Update(ctx context.Context, id, title, content string) (*entities.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"title": title, "content": content}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var model PostModel
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
