package handler

import (
	"errors"
	"fmt"
	"net/http"

	"blog-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const msgInternal = "Internal server error"

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation, domain.KindConflict, domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewHTTPErrorHandler renders every error as {"message": ...}. Causes of
// 5xx responses are logged and never sent to the client.
func NewHTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := http.StatusInternalServerError, msgInternal
		var de *domain.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &de):
			status = statusFor(de.Kind)
			if status != http.StatusInternalServerError {
				msg = de.Message
			}
		case errors.As(err, &he):
			status = he.Code
			if status < http.StatusInternalServerError {
				msg = fmt.Sprint(he.Message)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, messageResponse{Message: msg})
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}
