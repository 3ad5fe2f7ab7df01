package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
)

func TestNewJWTService_EmptySecret(t *testing.T) {
	// Act
	service, err := NewJWTService("", 24)

	// Assert
	assert.Error(t, err, "Пустой секрет должен давать ошибку")
	assert.Nil(t, service)
}

func TestJWTService_GenerateAndParseToken(t *testing.T) {
	// Arrange
	service, err := NewJWTService("test-secret-key", 1)
	require.NoError(t, err)

	user := &entity.User{
		ID:    42,
		Email: "user@example.com",
		Role:  entity.RoleAdmin,
	}

	// Act
	token, err := service.GenerateToken(user)
	require.NoError(t, err, "Выпуск токена должен быть успешным")
	require.NotEmpty(t, token)

	claims, err := service.ParseToken(token)

	// Assert
	require.NoError(t, err, "Разбор собственного токена должен быть успешным")
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_ParseToken_WrongSecret(t *testing.T) {
	// Arrange: токен выпущен одним ключом, проверяется другим
	issuer, err := NewJWTService("secret-one", 1)
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-two", 1)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: 1, Email: "user@example.com"})
	require.NoError(t, err)

	// Act
	claims, err := verifier.ParseToken(token)

	// Assert
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "Токен с чужой подписью должен давать ErrUnauthorized")
}

func TestJWTService_ParseToken_Garbage(t *testing.T) {
	// Arrange
	service, err := NewJWTService("test-secret-key", 1)
	require.NoError(t, err)

	// Act
	claims, err := service.ParseToken("not.a.token")

	// Assert
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
