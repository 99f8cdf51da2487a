package registrationerrors

import (
	"net/http"
	"strings"

	"github.com/canfinancialsolutions/can-registration-app/internal/shared/apperror"
)

var (
	ErrInvalidJSON = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid JSON",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email",
		http.StatusBadRequest,
	)
	ErrMissingBusinessOpportunities = apperror.New(
		apperror.CodeInvalidInput,
		"Select at least one entrepreneurship option",
		http.StatusBadRequest,
	)
	ErrMissingWealthSolutions = apperror.New(
		apperror.CodeInvalidInput,
		"Select at least one wealth solution option",
		http.StatusBadRequest,
	)
)

// MissingFields names every absent required field in one message.
func MissingFields(fields []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		"Missing: "+strings.Join(fields, ", "),
		http.StatusBadRequest,
	)
}

// StorageFailed carries the storage error message back to the caller. The
// insert did not happen; there is no partial record.
func StorageFailed(err error, message string) *apperror.AppError {
	return apperror.Wrap(err, apperror.CodeStorageError, message, http.StatusInternalServerError)
}

// EmailFailed reports a refused or failed confirmation send. The record is
// already persisted at this point and stays persisted.
func EmailFailed(err error, detail string) *apperror.AppError {
	e := apperror.Wrap(err, apperror.CodeDeliveryFailed, "Email failed", http.StatusBadGateway)
	return e.WithDetail(detail)
}
