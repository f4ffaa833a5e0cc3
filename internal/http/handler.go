package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/maikeru-desu/genius-todolist/internal/data_models"
	middleware "github.com/maikeru-desu/genius-todolist/internal/http/middlewares"
	"github.com/maikeru-desu/genius-todolist/internal/http/validators"
	"github.com/maikeru-desu/genius-todolist/internal/services"
)

type Handler struct {
	todoService    *services.TodoService
	insightService *services.InsightService
}

func NewHandler(todoService *services.TodoService, insightService *services.InsightService) *Handler {
	return &Handler{
		todoService:    todoService,
		insightService: insightService,
	}
}

func (h *Handler) CreateTodo(c echo.Context) error {
	var req dto.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	in, err := validators.ValidateCreateTodoRequest(&req)
	if err != nil {
		return err
	}

	todo, err := h.todoService.CreateTodo(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return err
	}

	return successResponse(c, http.StatusCreated, "Todo created successfully", todo)
}

func (h *Handler) GetTodo(c echo.Context) error {
	todo, err := h.todoService.GetTodo(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}

	return successResponse(c, http.StatusOK, "Todo retrieved successfully", todo)
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	var req dto.UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	in, err := validators.ValidateUpdateTodoRequest(&req)
	if err != nil {
		return err
	}

	todo, err := h.todoService.UpdateTodo(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		return err
	}

	return successResponse(c, http.StatusOK, "Todo updated successfully", todo)
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	err := h.todoService.DeleteTodo(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}

	return successResponse(c, http.StatusOK, "Todo deleted successfully", nil)
}

func (h *Handler) ListTodos(c echo.Context) error {
	query, err := validators.ValidateListTodosParams(validators.ListTodosParams{
		IsCompleted:   c.QueryParam("is_completed"),
		Priority:      c.QueryParam("priority"),
		SortBy:        c.QueryParam("sort_by"),
		SortDirection: c.QueryParam("sort_direction"),
		Page:          c.QueryParam("page"),
		PerPage:       c.QueryParam("per_page"),
	})
	if err != nil {
		return err
	}

	page, err := h.todoService.ListTodos(c.Request().Context(), middleware.CurrentUser(c), query)
	if err != nil {
		return err
	}

	return paginatedResponse(c, "Todos retrieved successfully", page)
}

func (h *Handler) GetInsight(c echo.Context) error {
	text, err := h.insightService.GenerateInsight(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return successResponse(c, http.StatusOK, "Insight generated successfully", text)
}

func (h *Handler) GetUser(c echo.Context) error {
	return successResponse(c, http.StatusOK, "User retrieved successfully", middleware.CurrentUser(c))
}
