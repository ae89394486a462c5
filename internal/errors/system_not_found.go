package errors

import "net/http"

var ErrSystemNotFound = &Exception{
	Message:    "learning system not found",
	StatusCode: http.StatusNotFound,
}
