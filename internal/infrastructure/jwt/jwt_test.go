package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	s := New("super-secret")
	userID := "u-123"
	role := "admin"

	tok, err := s.GenerateJWT(userID, role, time.Hour)
	require.NoError(t, err, "GenerateJWT should not error")
	require.NotEmpty(t, tok, "token must not be empty")

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err, "ValidateToken should not error for fresh token")
	require.NotNil(t, claims)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now().Add(-1*time.Second)))
}

func TestValidateToken_Table(t *testing.T) {
	makeToken := func(secret string, exp time.Duration) string {
		s := New(secret)
		tok, err := s.GenerateJWT("user-42", "admin", exp)
		require.NoError(t, err)
		return tok
	}
	unsignedToken := func() string {
		tok := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{UserID: "user-42", Role: "admin"})
		str, err := tok.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		return str
	}

	tests := []struct {
		name   string
		secret string
		token  string
		ok     bool
	}{
		{
			name:   "valid token",
			secret: "k1",
			token:  makeToken("k1", 5*time.Minute),
			ok:     true,
		},
		{
			name:   "invalid secret (signature mismatch)",
			secret: "k2",
			token:  makeToken("k1", 5*time.Minute),
		},
		{
			name:   "expired token",
			secret: "k1",
			token:  makeToken("k1", -1*time.Minute),
		},
		{
			name:   "malformed token string",
			secret: "k1",
			token:  "not-a-jwt",
		},
		{
			name:   "unsigned token (alg none)",
			secret: "k1",
			token:  unsignedToken(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.secret)

			claims, err := s.ValidateToken(tt.token)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "user-42", claims.UserID)
				assert.Equal(t, "admin", claims.Role)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
