package errors

import "net/http"

var ErrGestureActive = &Exception{
	Message:    "another drag gesture is already active",
	StatusCode: http.StatusConflict,
}
