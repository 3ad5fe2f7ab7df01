package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	"github.com/showtime/kahoot-api/internal/domain/repository"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
	"github.com/showtime/kahoot-api/pkg/auth"
)

// refCodeAttempts — число попыток сгенерировать незанятый реферальный код
const refCodeAttempts = 5

// AuthService предоставляет регистрацию и вход по email/паролю.
// Сессии, refresh-токены и прочий протокольный обвес сюда не входят:
// сервис выпускает один подписанный токен на запрос.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// RegisterInput содержит данные для регистрации
type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	ReferrerCode string // опционально: код пригласившего пользователя
}

// NewAuthService создает новый сервис аутентификации и возвращает ошибку при проблемах
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// Register регистрирует нового пользователя и выпускает токен
func (s *AuthService) Register(input RegisterInput) (*entity.User, string, error) {
	input.Email = normalizeEmail(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	input.ReferrerCode = strings.TrimSpace(input.ReferrerCode)

	if input.Email == "" {
		return nil, "", fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	if input.Password == "" {
		return nil, "", fmt.Errorf("%w: password is required", apperrors.ErrValidation)
	}

	// Проверяем занятость email до вставки, чтобы вернуть понятную ошибку;
	// гонку закрывает уникальный индекс в БД (репозиторий вернет ErrConflict).
	exists, err := s.userRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, "", fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
	}

	// Код пригласившего, если указан, должен принадлежать существующему пользователю
	if input.ReferrerCode != "" {
		if _, err := s.userRepo.GetByRefCode(input.ReferrerCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, "", fmt.Errorf("%w: unknown referrer code", apperrors.ErrValidation)
			}
			return nil, "", fmt.Errorf("failed to check referrer code: %w", err)
		}
	}

	refCode, err := s.generateRefCode()
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Email:        input.Email,
		Password:     input.Password, // хешируется в BeforeSave
		FullName:     input.FullName,
		Role:         entity.RoleUser,
		RefCode:      refCode,
		ReferrerCode: input.ReferrerCode,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("[AuthService] Зарегистрирован пользователь id=%d email=%s", user.ID, user.Email)
	return user, token, nil
}

// Login проверяет учетные данные и выпускает токен
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Не раскрываем, существует ли email
			return nil, "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, "", err
	}

	if user.IsLocked {
		return nil, "", fmt.Errorf("%w: account is locked", apperrors.ErrForbidden)
	}

	if !user.CheckPassword(password) {
		return nil, "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// generateRefCode подбирает незанятый реферальный код
func (s *AuthService) generateRefCode() (string, error) {
	for i := 0; i < refCodeAttempts; i++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		taken, err := s.userRepo.ExistsByRefCode(code)
		if err != nil {
			return "", fmt.Errorf("failed to check ref code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique ref code after %d attempts", refCodeAttempts)
}

// normalizeEmail приводит email к каноническому виду
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
