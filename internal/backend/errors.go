package backend

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avc/storefront-gateway/internal/domain"
)

// RateLimitError представляет ошибку превышения лимита запросов бэкенда
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

// StatusError неуспешный ответ бэкенда с его сообщением.
// Для известных кодов Unwrap возвращает доменную ошибку.
type StatusError struct {
	Code    int
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.Code)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// NewStatusError создает ошибку ответа бэкенда и связывает известные коды
// с доменными ошибками
func NewStatusError(code int, message string) *StatusError {
	se := &StatusError{Code: code, Message: message}
	switch code {
	case http.StatusUnauthorized:
		se.kind = domain.ErrInvalidCredentials
	case http.StatusForbidden:
		se.kind = domain.ErrForbidden
	case http.StatusNotFound:
		se.kind = domain.ErrNotFound
	case http.StatusConflict:
		se.kind = domain.ErrConflict
	}
	return se
}
