package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "github.com/maikeru-desu/genius-todolist/internal/http/middlewares"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
	"github.com/maikeru-desu/genius-todolist/internal/sessions"
)

func Register(
	e *echo.Echo,
	h *Handler,
	store sessions.Store,
	users *repository.UserRepository,
	rateLimitPerMinute int,
) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	authed := e.Group("", middleware.Auth(store, users))

	authed.GET("/todos", h.ListTodos)
	authed.POST("/todos", h.CreateTodo)
	authed.GET("/todos/:id", h.GetTodo)
	authed.PUT("/todos/:id", h.UpdateTodo)
	authed.DELETE("/todos/:id", h.DeleteTodo)

	authed.GET("/ai/get-insight", h.GetInsight)
	authed.GET("/user", h.GetUser)
}
