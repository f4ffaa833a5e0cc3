package errors

import "net/http"

func NewValidationException(fields map[string]string) *Exception {
	return &Exception{
		Message:    "the given data was invalid",
		StatusCode: http.StatusUnprocessableEntity,
		Details:    fields,
	}
}
