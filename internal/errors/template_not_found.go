package errors

import "net/http"

var ErrTemplateNotFound = &Exception{
	Message:    "template not found",
	StatusCode: http.StatusNotFound,
}
