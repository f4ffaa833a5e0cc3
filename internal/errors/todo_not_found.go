package errors

import "net/http"

// ErrTodoNotFound is returned both when no such record exists and when the
// record belongs to another owner, so existence is never leaked.
var ErrTodoNotFound = &Exception{
	Message:    "todo not found",
	StatusCode: http.StatusNotFound,
}
