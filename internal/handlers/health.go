package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность хранилища снимка
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnStatus сообщает состояние подключения к брокеру событий
type ConnStatus interface {
	IsConnected() bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db     Pinger
	events ConnStatus
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. events может быть nil,
// если публикация событий выключена.
func NewHealthHandler(db Pinger, events ConnStatus, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		events: events,
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Events   string `json:"events"`
}

// Health возвращает статус приложения. Брокер событий на статус не влияет:
// публикация не обязательна для работы витрины.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Events:   "disabled",
	}

	// Проверяем подключение к БД с таймаутом
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	}

	if h.events != nil {
		response.Events = "ok"
		if !h.events.IsConnected() {
			response.Events = "disconnected"
		}
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, h.logger, status, response)
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	// Проверяем подключение к БД
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
