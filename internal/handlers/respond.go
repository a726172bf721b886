package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/avc/storefront-gateway/internal/backend"
	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/avc/storefront-gateway/internal/service"
	"go.uber.org/zap"
)

// validationErrors ошибки, которые клиент может исправить, поменяв ввод
var validationErrors = []error{
	domain.ErrInvalidDongHo,
	domain.ErrInvalidBusinessNumber,
	domain.ErrIncompleteProduct,
	domain.ErrInvalidStatus,
	service.ErrPasswordTooShort,
	service.ErrPasswordMismatch,
	service.ErrConsentRequired,
	service.ErrInvalidHousehold,
}

// publicErrors ошибки, текст которых можно показать клиенту
var publicErrors = append([]error{
	service.ErrInvalidInput,
	service.ErrSessionWithoutScope,
	domain.ErrInvalidCredentials,
	domain.ErrAccountNotApproved,
	domain.ErrForbidden,
	domain.ErrNotFound,
	domain.ErrUserExists,
	domain.ErrAlreadyApproved,
	domain.ErrConflict,
}, validationErrors...)

// publicMessage возвращает текст ошибки для клиента без цепочки обертывания:
// сообщение бэкенда, если оно есть, иначе текст доменной ошибки
func publicMessage(err error, status int) string {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

// statusFor сопоставляет ошибку сервиса с HTTP статусом
func statusFor(err error) int {
	var rateLimitErr *backend.RateLimitError
	var statusErr *backend.StatusError

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountNotApproved),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, service.ErrSessionWithoutScope):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAlreadyApproved),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &rateLimitErr):
		return http.StatusTooManyRequests
	case errors.As(err, &statusErr):
		return http.StatusBadGateway
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// writeError отвечает статусом ошибки. Клиент получает только publicMessage,
// внутренние ошибки логируются и скрываются.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, msg string) {
	status := statusFor(err)

	var rateLimitErr *backend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		seconds := int(math.Ceil(rateLimitErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, publicMessage(err, status), status)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// tableQuery читает параметры таблицы: field и search (или keyword) для поиска,
// sort и order для сортировки. Без field поиск идет по defaultField.
func tableQuery(r *http.Request, defaultField string) catalog.Query {
	q := r.URL.Query()
	term := q.Get("search")
	if term == "" {
		term = q.Get("keyword")
	}
	field := q.Get("field")
	if field == "" {
		field = defaultField
	}
	return catalog.Query{
		SearchField: field,
		Term:        term,
		Sort: catalog.SortState{
			Field: q.Get("sort"),
			Order: catalog.ParseSortOrder(q.Get("order")),
		},
	}
}

// sessionFrom достает сессию, отвечая 401 при ее отсутствии
func sessionFrom(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	session, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return domain.Session{}, false
	}
	return *session, true
}
