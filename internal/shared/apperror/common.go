package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// ToHTTP resolves any error into a status code plus the AppError rendered in
// the response envelope. Errors that are not AppError collapse to the
// generic internal error so nothing escapes unformatted.
func ToHTTP(err error) (int, *AppError) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr
	}
	return http.StatusInternalServerError, ErrInternal
}
