package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnknownRole токен подписан верно, но роль в нем неизвестна
var ErrUnknownRole = errors.New("unknown role in token")

// Claims представляет JWT claims сессии витрины
type Claims struct {
	Role         domain.Role `json:"role"`
	BusinessID   string      `json:"business_id,omitempty"`
	BusinessName string      `json:"business_name,omitempty"`
	BackendToken string      `json:"bt,omitempty"`
	jwt.RegisteredClaims
}

// Manager управляет генерацией и валидацией JWT токенов
type Manager struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Generate генерирует новый JWT токен для сессии
func (m *Manager) Generate(s domain.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:         s.Role,
		BusinessID:   s.BusinessID,
		BusinessName: s.BusinessName,
		BackendToken: s.BackendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate валидирует JWT токен и восстанавливает сессию
func (m *Manager) Validate(tokenString string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if !claims.Role.Valid() {
		return nil, ErrUnknownRole
	}

	return &domain.Session{
		Role:         claims.Role,
		UserID:       claims.Subject,
		BusinessID:   claims.BusinessID,
		BusinessName: claims.BusinessName,
		BackendToken: claims.BackendToken,
	}, nil
}
