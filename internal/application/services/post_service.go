package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/mapper"
	"blog-service/internal/application/query"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"github.com/rs/zerolog"
)

type PostService struct {
	postRepo repositories.PostRepository
	logger   zerolog.Logger
	now      func() time.Time
}

type PostServiceOption func(*PostService)

// WithClock sets the time source for post creation timestamps.
func WithClock(now func() time.Time) PostServiceOption {
	return func(s *PostService) { s.now = now }
}

func NewPostService(postRepo repositories.PostRepository, logger zerolog.Logger, opts ...PostServiceOption) interfaces.PostService {
	s := &PostService{
		postRepo: postRepo,
		logger:   logger.With().Str("component", "post_service").Logger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PostService) CreatePost(ctx context.Context, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error) {
	if err := validatePostFields(createCommand.Title, createCommand.Content); err != nil {
		return nil, err
	}

	post := entities.NewPost(*createCommand.Title, *createCommand.Content, createCommand.Author, s.now())
	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().Str("post_id", created.ID).Str("author", created.Author).Msg("post created")
	return &command.CreatePostCommandResult{
		Message: MsgPostCreated,
		Result:  mapper.NewPostResultFromEntity(created),
	}, nil
}

func (s *PostService) ListPosts(ctx context.Context) (*query.PostQueryListResult, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &query.PostQueryListResult{Result: mapper.NewPostResultsFromEntities(posts)}, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*query.PostQueryResult, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return &query.PostQueryResult{Result: mapper.NewPostResultFromEntity(post)}, nil
}

// UpdatePost checks the id and existence before looking at the new fields.
func (s *PostService) UpdatePost(ctx context.Context, updateCommand *command.UpdatePostCommand) (*command.UpdatePostCommandResult, error) {
	if _, err := s.findPost(ctx, updateCommand.ID); err != nil {
		return nil, err
	}
	if err := validatePostFields(updateCommand.Title, updateCommand.Content); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.Update(ctx, updateCommand.ID, *updateCommand.Title, *updateCommand.Content)
	if err != nil {
		return nil, s.mapStoreError(updateCommand.ID, "update post", err)
	}

	s.logger.Info().Str("post_id", updated.ID).Msg("post updated")
	return &command.UpdatePostCommandResult{
		Message: MsgPostUpdated,
		Result:  mapper.NewPostResultFromEntity(updated),
	}, nil
}

func (s *PostService) DeletePost(ctx context.Context, deleteCommand *command.DeletePostCommand) (*command.DeletePostCommandResult, error) {
	if _, err := s.findPost(ctx, deleteCommand.ID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(ctx, deleteCommand.ID); err != nil {
		return nil, s.mapStoreError(deleteCommand.ID, "delete post", err)
	}

	s.logger.Info().Str("post_id", deleteCommand.ID).Msg("post deleted")
	return &command.DeletePostCommandResult{Message: MsgPostDeleted}, nil
}

func (s *PostService) findPost(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(id, "find post", err)
	}
	if post == nil {
		return nil, domain.NotFound(MsgPostNotFound)
	}
	return post, nil
}

func (s *PostService) mapStoreError(id, op string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrInvalidID):
		return domain.InvalidArgument(MsgInvalidPostID, err)
	case errors.Is(err, repositories.ErrNotFound):
		// removed between lookup and write
		return domain.NotFound(MsgPostNotFound)
	default:
		return fmt.Errorf("%s %s: %w", op, id, err)
	}
}

func validatePostFields(title, content *string) error {
	if anyMissing(title, content) {
		return domain.Validation(MsgMissingFields)
	}
	if anyEmpty(title, content) {
		return domain.Validation(MsgPostEmptyFields)
	}
	return nil
}
