package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "unknown task priority",
	StatusCode: http.StatusBadRequest,
}
