package handler

import (
	"errors"

	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	userContextKey = "username"

	msgMissingAuthHeader = "Missing Authorization Header"
	msgMalformedAuth     = "Invalid token"
)

// RequireAuth guards a route with an "Authorization: Bearer <token>" check.
// The verified username is stored in the request context.
func RequireAuth(userService interfaces.UserService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  userContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return userService.Authenticate(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var de *domain.Error
			if errors.As(err, &de) {
				return de
			}
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return domain.Unauthenticated(msgMissingAuthHeader, err)
			}
			return domain.Unauthenticated(msgMalformedAuth, err)
		},
	})
}

func currentUser(c echo.Context) string {
	username, _ := c.Get(userContextKey).(string)
	return username
}
