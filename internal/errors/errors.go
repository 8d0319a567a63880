// Package errors provides custom error types for the budget API.
// All service-layer errors should use AppError so that responses carry a
// stable code and never leak store internals to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so callers can
// compare against sentinels after Wrap or WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Store wraps an underlying database error.
func Store(err error) *AppError {
	return Wrap(ErrStore, err)
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrStore          = &AppError{Code: "STORE_ERROR", Message: "The data store rejected the operation", StatusCode: http.StatusInternalServerError}
	ErrBusy           = &AppError{Code: "OPERATION_TIMEOUT", Message: "Another operation for this user is still running", StatusCode: http.StatusServiceUnavailable}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "This username is already taken", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound      = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBudgetName = &AppError{Code: "DUPLICATE_BUDGET_NAME", Message: "A budget with this name already exists", StatusCode: http.StatusConflict}
)

// Account errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
)

// Category and category group errors.
var (
	ErrCategoryNotFound         = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryGroupNotFound    = &AppError{Code: "CATEGORY_GROUP_NOT_FOUND", Message: "Category group not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse            = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing transactions", StatusCode: http.StatusConflict}
	ErrCategoryGroupNotEmpty    = &AppError{Code: "CATEGORY_GROUP_NOT_EMPTY", Message: "Category group still contains categories", StatusCode: http.StatusConflict}
	ErrSystemGroupProtected     = &AppError{Code: "SYSTEM_GROUP_PROTECTED", Message: "System category groups cannot be modified", StatusCode: http.StatusConflict}
	ErrSystemGroupCategory      = &AppError{Code: "SYSTEM_GROUP_CATEGORY", Message: "Categories cannot be added to a system group", StatusCode: http.StatusConflict}
	ErrPaymentCategoryProtected = &AppError{Code: "PAYMENT_CATEGORY_PROTECTED", Message: "Credit card payment categories cannot be renamed or deleted", StatusCode: http.StatusConflict}
	ErrHiddenCategoryAutoAssign = &AppError{Code: "HIDDEN_CATEGORY_AUTO_ASSIGN", Message: "Auto-assign cannot target hidden categories", StatusCode: http.StatusConflict}
	ErrCrossBudget              = &AppError{Code: "CROSS_BUDGET_MOVE", Message: "Records must belong to the same budget", StatusCode: http.StatusConflict}
)

// Assignment errors.
var (
	ErrNegativeAssignment        = &AppError{Code: "NEGATIVE_ASSIGNMENT", Message: "Assigned amount cannot be negative", StatusCode: http.StatusBadRequest}
	ErrInsufficientAvailable     = &AppError{Code: "INSUFFICIENT_AVAILABLE", Message: "Source category does not have enough available", StatusCode: http.StatusUnprocessableEntity}
	ErrInsufficientReadyToAssign = &AppError{Code: "INSUFFICIENT_READY_TO_ASSIGN", Message: "Not enough money is ready to assign", StatusCode: http.StatusUnprocessableEntity}
	ErrAutoAssignNotFound        = &AppError{Code: "AUTO_ASSIGN_NOT_FOUND", Message: "Auto-assign configuration not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAutoAssignName   = &AppError{Code: "DUPLICATE_AUTO_ASSIGN_NAME", Message: "An auto-assign configuration with this name already exists", StatusCode: http.StatusConflict}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrFutureDated            = &AppError{Code: "FUTURE_DATED_TRANSACTION", Message: "Transactions cannot be dated in the future", StatusCode: http.StatusBadRequest}
	ErrSameAccountTransfer    = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer to the same account", StatusCode: http.StatusBadRequest}
	ErrTransactionNotEditable = &AppError{Code: "TRANSACTION_NOT_EDITABLE", Message: "Only memo, payee and cleared state of a transfer can be edited", StatusCode: http.StatusBadRequest}
	ErrTrackingCategory       = &AppError{Code: "TRACKING_ACCOUNT_CATEGORY", Message: "Tracking account transactions cannot be categorized", StatusCode: http.StatusBadRequest}
)
