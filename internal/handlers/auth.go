package handlers

import (
	"net/http"

	"github.com/avc/storefront-gateway/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res, err := h.authService.Login(r.Context(), req.UserID, req.Password)
	if err != nil {
		writeError(w, h.logger, err, "failed to login")
		return
	}

	w.Header().Set("Authorization", "Bearer "+res.Token)
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *AuthHandler) RegisterBuyer(w http.ResponseWriter, r *http.Request) {
	var req domain.BuyerRegistration
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.authService.RegisterBuyer(r.Context(), req); err != nil {
		writeError(w, h.logger, err, "failed to register buyer")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *AuthHandler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	var req domain.BusinessRegistration
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.authService.RegisterBusiness(r.Context(), req); err != nil {
		writeError(w, h.logger, err, "failed to register business")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Me возвращает профиль покупателя
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	profile, err := h.authService.Me(r.Context(), session)
	if err != nil {
		writeError(w, h.logger, err, "failed to get profile")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, profile)
}

// UpdateMe сохраняет профиль покупателя
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var req domain.BuyerProfileChange
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.authService.UpdateProfile(r.Context(), session, req); err != nil {
		writeError(w, h.logger, err, "failed to update profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
