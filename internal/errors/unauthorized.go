package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "unauthenticated",
	StatusCode: http.StatusUnauthorized,
}
