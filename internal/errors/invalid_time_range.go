package errors

import "net/http"

var ErrInvalidTimeRange = &Exception{
	Message:    "end time must be after start time",
	StatusCode: http.StatusBadRequest,
}
