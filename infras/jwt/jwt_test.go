package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/config"
	"salonbooking/infras/jwt"
)

const secret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, key string, method gojwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()

	token, err := gojwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)

	return token
}

func userClaims(expiresIn time.Duration) jwt.Claims {
	return jwt.Claims{
		Email: "giulia@example.com",
		Role:  jwt.RoleAuthenticated,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
}

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.Backend.JWTSecret = secret

	return jwt.New(cfg)
}

func TestValidateToken(t *testing.T) {
	anon := userClaims(time.Hour)
	anon.Role = "anon"

	noSubject := userClaims(time.Hour)
	noSubject.Subject = ""

	noExpiry := userClaims(time.Hour)
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: sign(t, secret, gojwt.SigningMethodHS256, userClaims(time.Hour))},
		{name: "expired", token: sign(t, secret, gojwt.SigningMethodHS256, userClaims(-time.Minute)), wantErr: jwt.ErrExpiredToken},
		{name: "wrong secret", token: sign(t, "another-secret", gojwt.SigningMethodHS256, userClaims(time.Hour)), wantErr: jwt.ErrInvalidToken},
		{name: "anonymous role", token: sign(t, secret, gojwt.SigningMethodHS256, anon), wantErr: jwt.ErrInvalidClaim},
		{name: "no subject", token: sign(t, secret, gojwt.SigningMethodHS256, noSubject), wantErr: jwt.ErrInvalidClaim},
		{name: "no expiry", token: sign(t, secret, gojwt.SigningMethodHS256, noExpiry), wantErr: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := newService().ValidateToken(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID())
			assert.Equal(t, "giulia@example.com", claims.Email)
		})
	}
}

func TestValidateToken_NoSecret(t *testing.T) {
	_, err := jwt.New(&config.Config{}).ValidateToken(sign(t, secret, gojwt.SigningMethodHS256, userClaims(time.Hour)))
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Basic abc", "Bearer ", "abc"} {
		_, err := jwt.ExtractTokenFromHeader(header)
		assert.Error(t, err, header)
	}
}
