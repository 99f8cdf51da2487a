package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"

	// Server errors (5xx)
	CodeInternalError  = "INTERNAL_ERROR"
	CodeStorageError   = "STORAGE_ERROR"
	CodeDeliveryFailed = "DELIVERY_FAILED"
)
