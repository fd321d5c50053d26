package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", time.Hour)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, time.Hour, tg.accessTokenExpiry)
}

func TestTokenGenerator_RoundTrip(t *testing.T) {
	tg := NewTokenGenerator("b8a3c2267dc85f855dea9b46b452bf20", time.Hour)

	tests := []struct {
		name          string
		identity      Identity
		expectedEmail string
	}{
		{
			name:          "learner",
			identity:      Identity{Email: "learner@example.com", Name: "Learner"},
			expectedEmail: "learner@example.com",
		},
		{
			name:          "admin role",
			identity:      Identity{Email: "admin@example.com", Name: "Admin", Role: RoleAdmin},
			expectedEmail: "admin@example.com",
		},
		{
			name:          "email is trimmed",
			identity:      Identity{Email: "  spaced@example.com ", Name: "Spaced"},
			expectedEmail: "spaced@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tg.GenerateAccessToken(tt.identity)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			identity, err := tg.ValidateAccessToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedEmail, identity.Email)
			assert.Equal(t, tt.identity.Name, identity.Name)
			assert.Equal(t, tt.identity.Role, identity.Role)
		})
	}
}

func TestTokenGenerator_GenerateAccessToken_RequiresEmail(t *testing.T) {
	tg := NewTokenGenerator("secret", time.Hour)

	_, err := tg.GenerateAccessToken(Identity{Name: "Nobody"})
	assert.EqualError(t, err, "email is required")
}

func TestTokenGenerator_ValidateAccessToken_Errors(t *testing.T) {
	tg := NewTokenGenerator("secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		past := NewTokenGenerator("secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.GenerateAccessToken(Identity{Email: "a@example.com"})
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenGenerator("other-secret", time.Hour)
		token, err := other.GenerateAccessToken(Identity{Email: "a@example.com"})
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("not an access token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"email": "a@example.com",
			"type":  "refresh",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(token)
		assert.EqualError(t, err, "token is not an access token")
	})

	t.Run("missing email", func(t *testing.T) {
		claims := jwt.MapClaims{
			"type": "access",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(token)
		assert.EqualError(t, err, "email not found in token")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tg.ValidateAccessToken("not-a-token")
		assert.Error(t, err)
	})
}
