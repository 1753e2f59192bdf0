// Package apperrors описывает таксономию ошибок шлюза и их отображение в HTTP-статусы.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind классифицирует ошибку шлюза.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingField
	KindInvalidURL
	KindBackendUnreachable
	KindBackendRejected
	KindMalformedBackendResponse
)

// Сообщения, которые уходят клиенту.
const (
	MsgMissingField      = "URL is required and must be a string"
	MsgInvalidURL        = "Please provide a valid URL starting with http:// or https://"
	MsgBackendRejected   = "Failed to shorten URL"
	MsgMalformedResponse = "Invalid response from URL shortening service"
	MsgInternal          = "Internal server error. Please try again later."
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidURL:
		return "invalid_url"
	case KindBackendUnreachable:
		return "backend_unreachable"
	case KindBackendRejected:
		return "backend_rejected"
	case KindMalformedBackendResponse:
		return "malformed_backend_response"
	default:
		return "internal"
	}
}

// Error - нормализованная ошибка шлюза.
//
// Message и Status отдаются клиенту как есть, Cause остаётся только в логах.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Cause   error
}

// Сентинелы для errors.Is: сравнение идёт только по Kind.
var (
	ErrMissingField             = &Error{Kind: KindMissingField}
	ErrInvalidURL               = &Error{Kind: KindInvalidURL}
	ErrBackendUnreachable       = &Error{Kind: KindBackendUnreachable}
	ErrBackendRejected          = &Error{Kind: KindBackendRejected}
	ErrMalformedBackendResponse = &Error{Kind: KindMalformedBackendResponse}
	ErrInternal                 = &Error{Kind: KindInternal}
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is сравнивает ошибки по классу, чтобы errors.Is(err, ErrInvalidURL) работал
// для любых сообщений и статусов.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// MissingField - в запросе нет поля url или оно не строка.
func MissingField(cause error) *Error {
	return &Error{Kind: KindMissingField, Status: http.StatusBadRequest, Message: MsgMissingField, Cause: cause}
}

// InvalidURL - кандидат не является абсолютным http(s) URL.
func InvalidURL(cause error) *Error {
	return &Error{Kind: KindInvalidURL, Status: http.StatusBadRequest, Message: MsgInvalidURL, Cause: cause}
}

// BackendUnreachable - сетевой сбой при обращении к бэкенду.
func BackendUnreachable(cause error) *Error {
	return &Error{Kind: KindBackendUnreachable, Status: http.StatusInternalServerError, Message: MsgInternal, Cause: cause}
}

// BackendRejected - бэкенд ответил статусом вне 2xx.
// Статус пробрасывается, если это код ошибки (4xx/5xx), иначе 502.
func BackendRejected(status int, body string) *Error {
	msg := body
	if msg == "" {
		msg = MsgBackendRejected
	}
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}
	return &Error{Kind: KindBackendRejected, Status: status, Message: msg}
}

// MalformedBackendResponse - бэкенд ответил 2xx, но валидного URL в ответе нет.
func MalformedBackendResponse(cause error) *Error {
	return &Error{Kind: KindMalformedBackendResponse, Status: http.StatusBadRequest, Message: MsgMalformedResponse, Cause: cause}
}

// Internal - любой непредвиденный сбой. Детали клиенту не раскрываются.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: MsgInternal, Cause: cause}
}

// From приводит произвольную ошибку к *Error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr
	}
	return Internal(err)
}
