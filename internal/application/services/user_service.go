package services

import (
	"context"
	"errors"
	"fmt"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"
	"blog-service/internal/infrastructure"

	"github.com/rs/zerolog"
)

type UserService struct {
	userRepo        repositories.UserRepository
	passwordService *infrastructure.PasswordService
	jwtService      *infrastructure.JWTService
	metrics         *infrastructure.Metrics
	logger          zerolog.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	passwordService *infrastructure.PasswordService,
	jwtService *infrastructure.JWTService,
	metrics *infrastructure.Metrics,
	logger zerolog.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:        userRepo,
		passwordService: passwordService,
		jwtService:      jwtService,
		metrics:         metrics,
		logger:          logger.With().Str("component", "user_service").Logger(),
	}
}

// RegisterUser creates an account and returns a token for it.
//
// The existence check and the insert are separate store calls, so two
// concurrent registrations can both pass the check. The unique indexes on
// username and email reject the loser, which is reported as the same
// conflict.
func (s *UserService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	result, err := s.registerUser(ctx, registerCommand)
	s.metrics.AuthEvent("register", outcome(err))
	return result, err
}

func (s *UserService) registerUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if anyMissing(registerCommand.Username, registerCommand.Email, registerCommand.Password) {
		return nil, domain.Validation(MsgMissingFields)
	}
	if anyEmpty(registerCommand.Username, registerCommand.Email, registerCommand.Password) {
		return nil, domain.Validation(MsgRegisterEmptyFields)
	}
	username := *registerCommand.Username
	email := *registerCommand.Email

	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if existingUser == nil {
		existingUser, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("find user by email: %w", err)
		}
	}
	if existingUser != nil {
		return nil, domain.Conflict(MsgUserExists, nil)
	}

	hash, err := s.passwordService.Hash(*registerCommand.Password)
	if err != nil {
		if errors.Is(err, infrastructure.ErrPasswordTooLong) {
			return nil, domain.Validation(MsgPasswordTooLong)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.userRepo.Create(ctx, entities.NewUser(username, email, hash)); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, domain.Conflict(MsgUserExists, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return &command.RegisterUserCommandResult{
		Message:     MsgRegistered,
		AccessToken: token,
	}, nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	result, err := s.loginUser(ctx, loginCommand)
	s.metrics.AuthEvent("login", outcome(err))
	return result, err
}

func (s *UserService) loginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if anyMissing(loginCommand.Username, loginCommand.Password) {
		return nil, domain.Validation(MsgMissingFields)
	}
	if anyEmpty(loginCommand.Username, loginCommand.Password) {
		return nil, domain.Validation(MsgLoginEmptyFields)
	}

	user, err := s.userRepo.FindByUsername(ctx, *loginCommand.Username)
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if user == nil || !s.passwordService.Verify(*loginCommand.Password, user.PasswordHash) {
		s.logger.Debug().Str("username", *loginCommand.Username).Msg("login rejected")
		return nil, domain.Unauthenticated(MsgInvalidCredentials, nil)
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &command.LoginUserCommandResult{
		Message:     MsgLoggedIn,
		AccessToken: token,
	}, nil
}

func (s *UserService) Authenticate(token string) (string, error) {
	username, err := s.jwtService.ParseToken(token)
	if err != nil {
		if errors.Is(err, infrastructure.ErrTokenExpired) {
			return "", domain.Unauthenticated(MsgTokenExpired, err)
		}
		return "", domain.Unauthenticated(MsgTokenInvalid, err)
	}
	return username, nil
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return domain.KindOf(err).String()
}
