package errors

import (
	"errors"
	"net/http"
)

// Exception is an error that carries the HTTP status it should be rendered
// with. Details holds field-level messages for validation failures and is
// nil otherwise.
type Exception struct {
	Message    string
	StatusCode int
	Details    map[string]string
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
