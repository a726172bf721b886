package jwt

import (
	"testing"
	"time"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		session   domain.Session
		wantErr   bool
	}{
		{
			name:      "Buyer session",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			session:   domain.Session{Role: domain.RoleBuyer, UserID: "kim01"},
			wantErr:   false,
		},
		{
			name:      "Business session",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			session:   domain.Session{Role: domain.RoleBusiness, UserID: "acme", BusinessID: "acme", BusinessName: "Acme"},
			wantErr:   false,
		},
		{
			name:      "Admin session",
			secretKey: "secret",
			tokenTTL:  time.Hour,
			session:   domain.Session{Role: domain.RoleAdmin, UserID: "root"},
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.session)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	session := domain.Session{
		Role:         domain.RoleBusiness,
		UserID:       "acme",
		BusinessID:   "acme",
		BusinessName: "Acme 가구",
		BackendToken: "backend-token",
	}

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(session)
		require.NoError(t, err)

		parsed, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, session, *parsed)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(session)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(session)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Unknown role", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(domain.Session{Role: "ROOT", UserID: "x"})
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("Multiple users", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)

		buyer := domain.Session{Role: domain.RoleBuyer, UserID: "kim01"}
		admin := domain.Session{Role: domain.RoleAdmin, UserID: "root"}

		token1, err := m.Generate(buyer)
		require.NoError(t, err)

		token2, err := m.Generate(admin)
		require.NoError(t, err)

		parsed1, err := m.Validate(token1)
		require.NoError(t, err)
		assert.Equal(t, buyer, *parsed1)

		parsed2, err := m.Validate(token2)
		require.NoError(t, err)
		assert.Equal(t, admin, *parsed2)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// alg=none
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJyb2xlIjoiQURNSU4iLCJzdWIiOiJyb290In0.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(domain.Session{Role: domain.RoleBuyer, UserID: "kim01"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
