package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
)

// HTTPError carries the status and envelope fields of an error response.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// domainError maps an AppError onto a status and a response code. Configuration and
// lookup misses keep their own codes so clients can tell them apart from runtime failures.
func domainError(failureCode string, err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return NewHTTPError(http.StatusBadRequest, failureCode, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeNotFound):
		return NewHTTPError(http.StatusNotFound, apperrors.CodeNotFound, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeConfig):
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeConfig, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, failureCode, errMessage(err), err)
	}
}

// asHTTPError accepts anything pushed onto gin's error list. Bare AppErrors are
// mapped with their own code, anything else becomes an opaque 500.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return domainError(appErr.Code, err)
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
