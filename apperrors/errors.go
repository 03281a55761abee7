package apperrors

import "net/http"

// Kind classifies application errors for HTTP status mapping.
type Kind int

const (
	KindValidation   Kind = iota // 400
	KindUnauthorized             // 401
	KindForbidden                // 403
	KindNotFound                 // 404
	KindDatabase                 // 500
)

// AppError is a typed failure raised by handlers and converted to an HTTP
// response by the error-handler middleware. Handlers never translate these
// themselves.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Status returns the HTTP status bound to the error kind.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewDatabase(message string) *AppError {
	return &AppError{Kind: KindDatabase, Message: message}
}
