package interfaces

import (
	"context"

	"blog-service/internal/application/command"
)

type UserService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	// Authenticate verifies a bearer token and returns its username.
	Authenticate(token string) (string, error)
}
