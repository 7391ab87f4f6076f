package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulluiz/api-recipe-generator/domain"
)

func newTestService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "api-recipe-generator"}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	service := newTestService()

	token := service.GenerateToken("user-123", "cook", "cook@example.com")
	require.NotEmpty(t, token)

	parsed, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*userClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "cook", claims.Username)
	assert.Equal(t, "cook@example.com", claims.Email)
	assert.Equal(t, "api-recipe-generator", claims.Issuer)
}

func TestGetSubject(t *testing.T) {
	service := newTestService()
	token := service.GenerateToken("user-123", "cook", "cook@example.com")

	sub, err := service.GetSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestGetSubject_Garbage(t *testing.T) {
	service := newTestService()

	_, err := service.GetSubject("definitely.not.jwt")

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetSubject_WrongSecret(t *testing.T) {
	token := newTestService().GenerateToken("user-123", "cook", "cook@example.com")

	other := &jwtService{secretKey: "another-secret", issuer: "api-recipe-generator"}
	_, err := other.GetSubject(token)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetSubject_EmptySubject(t *testing.T) {
	service := newTestService()
	token := service.GenerateToken("", "cook", "cook@example.com")

	_, err := service.GetSubject(token)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestMailToken_RoundTrip(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateMailToken(map[string]any{"email": "cook@example.com"}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateMailToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", claims["email"])
}

func TestMailToken_Expired(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateMailToken(map[string]any{"email": "cook@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateMailToken(token)

	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
