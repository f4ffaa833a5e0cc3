package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/maikeru-desu/genius-todolist/internal/errors"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
)

// envelope is the uniform response wrapper: {success, message, data[, meta]}.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta,omitempty"`
}

type pageMeta struct {
	CurrentPage  int   `json:"current_page"`
	LastPage     int   `json:"last_page"`
	PerPage      int   `json:"per_page"`
	Total        int64 `json:"total"`
	From         int   `json:"from"`
	To           int   `json:"to"`
	HasMorePages bool  `json:"has_more_pages"`
}

func successResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func paginatedResponse(c echo.Context, message string, page *repository.PagedResult) error {
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    page.Items,
		Meta: pageMeta{
			CurrentPage:  page.CurrentPage,
			LastPage:     page.LastPage,
			PerPage:      page.PerPage,
			Total:        page.Total,
			From:         page.From,
			To:           page.To,
			HasMorePages: page.HasMorePages,
		},
	})
}

// ErrorHandler renders every error through the envelope. Exceptions keep
// their status and details; anything unrecognized becomes a generic 500 so
// internals never leak to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	message := "internal server error"
	var data interface{}

	var appErr *apperrors.Exception
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		statusCode = appErr.StatusCode
		message = appErr.Message
		if appErr.Details != nil {
			data = appErr.Details
		}
	case errors.As(err, &httpErr):
		statusCode = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	_ = c.JSON(statusCode, envelope{
		Success: false,
		Message: message,
		Data:    data,
	})
}
