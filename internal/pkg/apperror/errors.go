package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	// ErrCodeNetwork — ответа от API нет вовсе (обрыв, таймаут, DNS).
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeAPI — API ответило не-2xx статусом.
	ErrCodeAPI ErrorCode = "API_ERROR"
)

// GenericMessage показывается, когда тело ошибки API не является JSON.
const GenericMessage = "An error occurred"

// AppError — единый тип ошибки для вызовов API и локальной валидации.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// FromStatus строит ошибку по ответу API: статус сохраняется как есть.
func FromStatus(status int, message string) *AppError {
	code := ErrCodeAPI
	switch status {
	case http.StatusUnauthorized:
		code = ErrCodeUnauthorized
	case http.StatusForbidden:
		code = ErrCodeForbidden
	case http.StatusNotFound:
		code = ErrCodeNotFound
	case http.StatusConflict:
		code = ErrCodeConflict
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// Network оборачивает транспортную ошибку.
func Network(err error) *AppError {
	return Wrap(err, ErrCodeNetwork, "Unable to reach the server. Please try again.")
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func is(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool {
	return is(err, ErrCodeNotFound)
}

func IsForbidden(err error) bool {
	return is(err, ErrCodeForbidden)
}

func IsValidation(err error) bool {
	return is(err, ErrCodeValidation)
}

func IsUnauthorized(err error) bool {
	return is(err, ErrCodeUnauthorized)
}

func IsNetwork(err error) bool {
	return is(err, ErrCodeNetwork)
}

// StatusOf возвращает HTTP статус ошибки или 500 для неизвестных ошибок.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// MessageOf возвращает сообщение для показа пользователю.
// Для чужих ошибок используется fallback.
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

var (
	ErrUnauthorized = New(ErrCodeUnauthorized, "Please sign in to continue")
	ErrForbidden    = New(ErrCodeForbidden, "Access denied")
)
