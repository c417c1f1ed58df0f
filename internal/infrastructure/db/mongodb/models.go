package mongodb

import (
	"time"

	"blog-service/internal/domain/entities"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserModel struct {
	Id       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

type PostModel struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (m *UserModel) toEntity() *entities.User {
	return &entities.User{
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
	}
}

func (m *PostModel) toEntity() *entities.Post {
	return &entities.Post{
		ID:        m.Id.Hex(),
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		CreatedAt: m.Timestamp,
	}
}
