package handler

import (
	"net/http"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

const msgHealthy = "API server running successfully"

type Handler struct {
	userService interfaces.UserService
	postService interfaces.PostService
}

func NewHandler(userService interfaces.UserService, postService interfaces.PostService) *Handler {
	return &Handler{
		userService: userService,
		postService: postService,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Health handles GET /.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: msgHealthy})
}

// Register handles POST /register.
func (h *Handler) Register(c echo.Context) error {
	body := readPayload(c)
	result, err := h.userService.RegisterUser(c.Request().Context(), &command.RegisterUserCommand{
		Username: body.field("username"),
		Email:    body.field("email"),
		Password: body.field("password"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Login handles POST /login.
func (h *Handler) Login(c echo.Context) error {
	body := readPayload(c)
	result, err := h.userService.LoginUser(c.Request().Context(), &command.LoginUserCommand{
		Username: body.field("username"),
		Password: body.field("password"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ListPosts handles GET /blogs.
func (h *Handler) ListPosts(c echo.Context) error {
	result, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// GetPost handles GET /blogs/:id.
func (h *Handler) GetPost(c echo.Context) error {
	result, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// CreatePost handles POST /blogs. Any author in the body is ignored.
func (h *Handler) CreatePost(c echo.Context) error {
	body := readPayload(c)
	result, err := h.postService.CreatePost(c.Request().Context(), &command.CreatePostCommand{
		Title:   body.field("title"),
		Content: body.field("content"),
		Author:  currentUser(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: result.Message})
}

// UpdatePost handles PUT /blogs/:id.
func (h *Handler) UpdatePost(c echo.Context) error {
	body := readPayload(c)
	result, err := h.postService.UpdatePost(c.Request().Context(), &command.UpdatePostCommand{
		ID:      c.Param("id"),
		Title:   body.field("title"),
		Content: body.field("content"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: result.Message})
}

// DeletePost handles DELETE /blogs/:id.
func (h *Handler) DeletePost(c echo.Context) error {
	result, err := h.postService.DeletePost(c.Request().Context(), &command.DeletePostCommand{
		ID: c.Param("id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: result.Message})
}
