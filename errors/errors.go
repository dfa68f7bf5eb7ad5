package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Errores de sesión
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	ErrCodeInvalidToken   ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingSession ErrorCode = "MISSING_SESSION"

	// Errores de validación
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"

	// Errores del API del hotel
	ErrCodeAPIError    ErrorCode = "API_ERROR"
	ErrCodeAPIDecode   ErrorCode = "API_DECODE_ERROR"
	ErrCodeAPINotFound ErrorCode = "API_NOT_FOUND"
	ErrCodeUnreachable ErrorCode = "API_UNREACHABLE"

	// Errores de negocio
	ErrCodeNoBalanceDue     ErrorCode = "NO_BALANCE_DUE"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Errores de cache
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"
)

// AppError define el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
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

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError revisa si el error es un AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrae el AppError de un error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsSessionExpired revisa si el error corresponde a un 401 del backend.
func IsSessionExpired(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && (appErr.Code == ErrCodeSessionExpired || appErr.Code == ErrCodeUnauthorized)
}

// IsValidationError revisa si el error es de validación local.
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat,
		ErrCodeInvalidEmail, ErrCodeInvalidPhone, ErrCodeInvalidAmount,
		ErrCodeInvalidStatus, ErrCodeInvalidDate:
		return true
	}
	return false
}

var (
	// Errores de sesión
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Errores de reservación
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoBalanceDue        = errors.New("reservation has no balance due")

	// Errores de habitación
	ErrRoomNotFound = errors.New("room not found")

	// Errores de huésped
	ErrGuestNotFound = errors.New("guest not found")
)
