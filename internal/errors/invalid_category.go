package errors

import "net/http"

var ErrInvalidCategory = &Exception{
	Message:    "unknown task category",
	StatusCode: http.StatusBadRequest,
}
