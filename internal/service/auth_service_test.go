package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
	"github.com/showtime/kahoot-api/pkg/auth"
)

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByRefCode(refCode string) (*entity.User, error) {
	args := m.Called(refCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByRefCode(refCode string) (bool, error) {
	args := m.Called(refCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListByReferrerCode(referrerCode string) ([]entity.User, error) {
	args := m.Called(referrerCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByReferrerCode(referrerCode string) (int64, error) {
	args := m.Called(referrerCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// createTestAuthService собирает AuthService с реальным JWTService и моком репозитория
func createTestAuthService(t *testing.T, userRepo *MockUserRepository) *AuthService {
	t.Helper()

	jwtService, err := auth.NewJWTService("test-secret-key", 1)
	require.NoError(t, err, "Создание JWTService не должно возвращать ошибку")

	authService, err := NewAuthService(userRepo, jwtService)
	require.NoError(t, err, "Создание AuthService не должно возвращать ошибку")
	return authService
}

// ============================================================================
// Тесты для AuthService
// ============================================================================

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)
	mockUserRepo.On("ExistsByRefCode", mock.AnythingOfType("string")).Return(false, nil)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		// Имитируем присвоение ID базой данных
		args.Get(0).(*entity.User).ID = 1
	}).Return(nil)

	authService := createTestAuthService(t, mockUserRepo)

	// Act: email с пробелами и в верхнем регистре должен быть нормализован
	user, token, err := authService.Register(RegisterInput{
		FullName: "Иван Иванов",
		Email:    "  NEW@Example.com ",
		Password: "secret123",
	})

	// Assert
	require.NoError(t, err, "Регистрация должна быть успешной")
	require.NotNil(t, user)
	assert.Equal(t, "new@example.com", user.Email, "Email должен быть нормализован")
	assert.Equal(t, entity.RoleUser, user.Role, "Новый пользователь получает роль user")
	assert.Len(t, user.RefCode, 8, "Пользователь должен получить реферальный код из 8 символов")
	assert.NotEmpty(t, token, "Регистрация должна выпускать токен")
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("ExistsByEmail", "taken@example.com").Return(true, nil)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, token, err := authService.Register(RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	// Assert
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Занятый email должен давать ErrConflict")
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_UnknownReferrerCode(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)
	mockUserRepo.On("GetByRefCode", "NOSUCH01").Return(nil, apperrors.ErrNotFound)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, _, err := authService.Register(RegisterInput{
		Email:        "new@example.com",
		Password:     "secret123",
		ReferrerCode: "NOSUCH01",
	})

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Неизвестный реферальный код должен давать ErrValidation")
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_WithValidReferrerCode(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)

	referrer := &entity.User{ID: 5, Email: "referrer@example.com", RefCode: "REF00005"}

	mockUserRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)
	mockUserRepo.On("GetByRefCode", "REF00005").Return(referrer, nil)
	mockUserRepo.On("ExistsByRefCode", mock.AnythingOfType("string")).Return(false, nil)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.User).ID = 6
	}).Return(nil)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, _, err := authService.Register(RegisterInput{
		Email:        "new@example.com",
		Password:     "secret123",
		ReferrerCode: "REF00005",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "REF00005", user.ReferrerCode, "Код пригласившего должен сохраняться у нового пользователя")
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_MissingPassword(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, _, err := authService.Register(RegisterInput{Email: "new@example.com"})

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockUserRepo.AssertNotCalled(t, "ExistsByEmail")
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &entity.User{
		ID:       1,
		Email:    "user@example.com",
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
	}
	mockUserRepo.On("GetByEmail", "user@example.com").Return(storedUser, nil)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, token, err := authService.Login("User@Example.com", "secret123")

	// Assert
	require.NoError(t, err, "Вход с правильными данными должен быть успешным")
	assert.Equal(t, uint(1), user.ID)
	assert.NotEmpty(t, token, "Вход должен выпускать токен")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &entity.User{
		ID:       1,
		Email:    "user@example.com",
		Password: string(hashedPassword),
	}
	mockUserRepo.On("GetByEmail", "user@example.com").Return(storedUser, nil)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, _, err := authService.Login("user@example.com", "wrongPassword")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "Неверный пароль должен давать ErrUnauthorized")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByEmail", "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, _, err := authService.Login("ghost@example.com", "secret123")

	// Assert: не раскрываем, существует ли email — та же ошибка, что и для пароля
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)

	storedUser := &entity.User{
		ID:       1,
		Email:    "locked@example.com",
		Password: "$2a$10$irrelevanthash",
		IsLocked: true,
	}
	mockUserRepo.On("GetByEmail", "locked@example.com").Return(storedUser, nil)

	authService := createTestAuthService(t, mockUserRepo)

	// Act
	user, _, err := authService.Login("locked@example.com", "secret123")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "Заблокированный аккаунт должен давать ErrForbidden")
}
