package command

import "blog-service/internal/application/common"

// CreatePostCommand carries the author from the verified token, never from
// the request body.
type CreatePostCommand struct {
	Title   *string
	Content *string
	Author  string
}

type CreatePostCommandResult struct {
	Message string             `json:"message"`
	Result  *common.PostResult `json:"-"`
}
