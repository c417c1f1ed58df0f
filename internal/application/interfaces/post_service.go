package interfaces

import (
	"context"

	"blog-service/internal/application/command"
	"blog-service/internal/application/query"
)

type PostService interface {
	CreatePost(ctx context.Context, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error)
	ListPosts(ctx context.Context) (*query.PostQueryListResult, error)
	GetPost(ctx context.Context, id string) (*query.PostQueryResult, error)
	UpdatePost(ctx context.Context, updateCommand *command.UpdatePostCommand) (*command.UpdatePostCommandResult, error)
	DeletePost(ctx context.Context, deleteCommand *command.DeletePostCommand) (*command.DeletePostCommandResult, error)
}
