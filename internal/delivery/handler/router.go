package handler

import (
	"time"

	"blog-service/internal/infrastructure"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const maxBodySize = "1M"

// NewRouter builds the echo instance with middleware and all routes.
func NewRouter(h *Handler, metrics *infrastructure.Metrics, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(requestLogger(logger))
	e.Use(observeMetrics(metrics))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.GET("/", h.Health)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	blogs := e.Group("/blogs", RequireAuth(h.userService))
	blogs.GET("", h.ListPosts)
	blogs.POST("", h.CreatePost)
	blogs.GET("/:id", h.GetPost)
	blogs.PUT("/:id", h.UpdatePost)
	blogs.DELETE("/:id", h.DeletePost)

	return e
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("route", v.RoutePath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("http.request")
			return nil
		},
	})
}

func observeMetrics(metrics *infrastructure.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
