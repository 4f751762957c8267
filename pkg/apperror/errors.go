package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Configuration (CFG) ----

// ErrTenantKeyMissing reports that no Mintology tenant key has been
// configured. Detected locally, before any network call is made.
func ErrTenantKeyMissing() *AppError {
	return New("CFG_001", "Mintology key is not specified", http.StatusPreconditionFailed)
}

func ErrCredentialsMissing() *AppError {
	return New("CFG_002", "Mintology client credentials are not configured", http.StatusPreconditionFailed)
}

// ---- Validation (VAL) ----

func ErrInvalidStorageKey(key string) *AppError {
	return New("VAL_001", fmt.Sprintf("invalid storage key %q: expected prefix/fileId/fileName", key), http.StatusBadRequest)
}

func ErrEmptyProjectID() *AppError {
	return New("VAL_002", "project id is required", http.StatusBadRequest)
}

func ErrNoLayers() *AppError {
	return New("VAL_003", "no layers provided", http.StatusBadRequest)
}

// Validation returns a generic validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Upstream vendor API (UPS) ----

// Upstream wraps a non-2xx vendor response, preserving the vendor status
// code and decoded error message so callers can interpret the vendor's
// error semantics directly.
func Upstream(status int, vendorCode, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	e := New("UPS_001", message, status)
	if vendorCode != "" {
		e.Code = "UPS_001." + vendorCode
	}
	return e
}

// ---- Checkout (PAY) ----

func ErrPaymentMethodMissing() *AppError {
	return New("PAY_001", "Payment method was not attached", http.StatusBadRequest)
}

func ErrChargeDeclined(message string) *AppError {
	if message == "" {
		message = "Charge was not successful"
	}
	return New("PAY_002", message, http.StatusPaymentRequired)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrTransport wraps a connection-level failure (DNS, timeout, reset)
// where no vendor response was received at all.
func ErrTransport(err error) *AppError {
	return Wrap("SYS_002", "Mintology API is unreachable", http.StatusBadGateway, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_003", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_004", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
