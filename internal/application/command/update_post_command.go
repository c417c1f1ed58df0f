package command

import "blog-service/internal/application/common"

type UpdatePostCommand struct {
	ID      string
	Title   *string
	Content *string
}

type UpdatePostCommandResult struct {
	Message string             `json:"message"`
	Result  *common.PostResult `json:"-"`
}
