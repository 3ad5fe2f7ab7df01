package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
)

func TestUserService_GetReferrals_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)

	owner := &entity.User{ID: 1, RefCode: "REF00001"}
	referrals := []entity.User{
		{ID: 2, Email: "a@example.com", ReferrerCode: "REF00001"},
		{ID: 3, Email: "b@example.com", ReferrerCode: "REF00001"},
	}

	mockUserRepo.On("ListByReferrerCode", "REF00001").Return(referrals, nil)
	mockUserRepo.On("CountByReferrerCode", "REF00001").Return(int64(2), nil)

	userService := NewUserService(mockUserRepo)

	// Act
	got, count, err := userService.GetReferrals(owner)

	// Assert
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), count)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetReferrals_EmptyRefCode(t *testing.T) {
	// Arrange: у пользователя без реферального кода не может быть рефералов
	mockUserRepo := new(MockUserRepository)
	owner := &entity.User{ID: 1, RefCode: ""}

	userService := NewUserService(mockUserRepo)

	// Act
	got, count, err := userService.GetReferrals(owner)

	// Assert: репозиторий не должен вызываться вовсе
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(0), count)
	mockUserRepo.AssertNotCalled(t, "ListByReferrerCode")
}

func TestUserService_SetUserLock_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	stored := &entity.User{ID: 7, Email: "user@example.com", IsLocked: false}

	mockUserRepo.On("GetByID", uint(7)).Return(stored, nil)
	mockUserRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == 7 && u.IsLocked
	})).Return(nil)

	userService := NewUserService(mockUserRepo)

	// Act
	user, err := userService.SetUserLock(7, true)

	// Assert
	require.NoError(t, err, "Блокировка должна быть успешной")
	assert.True(t, user.IsLocked, "Флаг блокировки должен быть установлен")
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_SetUserLock_Unlock(t *testing.T) {
	// Arrange: снятие блокировки с заблокированного пользователя
	mockUserRepo := new(MockUserRepository)
	stored := &entity.User{ID: 7, Email: "user@example.com", IsLocked: true}

	mockUserRepo.On("GetByID", uint(7)).Return(stored, nil)
	mockUserRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == 7 && !u.IsLocked
	})).Return(nil)

	userService := NewUserService(mockUserRepo)

	// Act
	user, err := userService.SetUserLock(7, false)

	// Assert
	require.NoError(t, err)
	assert.False(t, user.IsLocked, "Флаг блокировки должен быть снят")
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_SetUserLock_NotFound(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	userService := NewUserService(mockUserRepo)

	// Act
	user, err := userService.SetUserLock(42, true)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockUserRepo.AssertNotCalled(t, "Update")
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	userService := NewUserService(mockUserRepo)

	// Act
	user, err := userService.GetUserByID(42)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
