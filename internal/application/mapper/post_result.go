package mapper

import (
	"blog-service/internal/application/common"
	"blog-service/internal/domain/entities"
)

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	return &common.PostResult{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		Timestamp: post.CreatedAt,
	}
}

func NewPostResultsFromEntities(posts []*entities.Post) []*common.PostResult {
	results := make([]*common.PostResult, 0, len(posts))
	for _, p := range posts {
		results = append(results, NewPostResultFromEntity(p))
	}
	return results
}
