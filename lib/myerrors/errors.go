package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func (e httpError) Unwrap() error {
	return e.err
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) *httpError {
	return newError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

// NewFromHTTPStatus classifies a status code received from a remote party.
func NewFromHTTPStatus(httpCode int, err error) *httpError {
	if httpCode < http.StatusBadRequest {
		httpCode = http.StatusBadGateway
	}
	return newError(httpCode, err)
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return err != nil && GetHTTPStatus(err) == http.StatusNotFound
}
