package errors

import "net/http"

var ErrModuleNotFound = &Exception{
	Message:    "module not found",
	StatusCode: http.StatusNotFound,
}
