package errorx

import (
	"fmt"
	"net/http"
)

type Code int

const (
	BadRequest    Code = 100001
	NotFound      Code = 100002
	AlreadyExists Code = 100003
	Internal      Code = 100004
	Unavailable   Code = 100005
	Conflict      Code = 100006
)

// HTTPStatus maps an error code to the status the API surfaces it with.
func (c Code) HTTPStatus() int {
	switch c {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var Unknown = Error{Code: Internal, Message: "Request failed"}

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}
