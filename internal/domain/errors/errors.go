package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches copies made by WithDetails against the original error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode && t.httpCode == e.httpCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired identity token",
		"",
	)

	ErrInvalidAdminCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid admin credentials",
		"",
	)

	// Authorization errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"your role is not allowed to perform this action",
		"",
	)

	ErrApprovalRequired = NewBaseError(
		http.StatusForbidden,
		"APPROVAL_REQUIRED",
		"your application has not been approved",
		"",
	)

	ErrAccountSuspended = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_SUSPENDED",
		"this account has been suspended",
		"",
	)

	ErrDeliveryNotApproved = NewBaseError(
		http.StatusForbidden,
		"DELIVERY_NOT_APPROVED",
		"delivery registration is not approved",
		"",
	)

	ErrNotOrderParty = NewBaseError(
		http.StatusForbidden,
		"NOT_ORDER_OWNER",
		"you are not allowed to change this order",
		"",
	)

	ErrOrderAssigned = NewBaseError(
		http.StatusForbidden,
		"ORDER_ALREADY_ASSIGNED",
		"order is assigned to another courier",
		"",
	)

	ErrNotProductOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_PRODUCT_OWNER",
		"you do not own this product",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"order status transition is not allowed",
		"",
	)

	ErrInvalidApprovalTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_APPROVAL_TRANSITION",
		"only pending applications can be approved or rejected",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"cart is empty",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_UNAVAILABLE",
		"product is not available",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"not enough stock for the requested quantity",
		"",
	)

	// Not found errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"seller profile not found",
		"",
	)

	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"delivery registration not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// Conflict errors
	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"account already exists",
		"",
	)

	ErrApplicationExists = NewBaseError(
		http.StatusConflict,
		"APPLICATION_EXISTS",
		"an application is already pending or approved",
		"",
	)

	ErrOrderStatusConflict = NewBaseError(
		http.StatusConflict,
		"ORDER_STATUS_CONFLICT",
		"order was updated by someone else, reload and retry",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	// Upstream errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"UPSTREAM_UNAVAILABLE",
		"an upstream service is unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
