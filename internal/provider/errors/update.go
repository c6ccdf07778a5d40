package errors

import "errors"

var (
	ErrBadHTTPStatus  = errors.New("bad HTTP status")
	ErrBadRequest     = errors.New("bad request sent")
	ErrHostnameNotSet = errors.New("hostname is not set")
	ErrPasswordNotSet = errors.New("password is not set")
	ErrReadResponse   = errors.New("cannot read response body")
	ErrUsernameNotSet = errors.New("username is not set")
)
