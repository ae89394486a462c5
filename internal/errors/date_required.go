package errors

import "net/http"

var ErrDateRequired = &Exception{
	Message:    "date is required",
	StatusCode: http.StatusBadRequest,
}
