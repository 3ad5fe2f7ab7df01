package service

import (
	"log"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	"github.com/showtime/kahoot-api/internal/domain/repository"
)

// UserService предоставляет методы для работы с пользователями
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID возвращает пользователя по ID
func (s *UserService) GetUserByID(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// SetUserLock блокирует или разблокирует пользователя.
// Заблокированный пользователь получает отказ при входе.
func (s *UserService) SetUserLock(userID uint, locked bool) (*entity.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.IsLocked = locked
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	log.Printf("[UserService] Пользователь %d: is_locked=%v", userID, locked)
	return user, nil
}

// GetReferrals возвращает пользователей, приглашённых по реферальному коду
// данного пользователя, и их количество
func (s *UserService) GetReferrals(user *entity.User) ([]entity.User, int64, error) {
	if user.RefCode == "" {
		return []entity.User{}, 0, nil
	}

	referrals, err := s.userRepo.ListByReferrerCode(user.RefCode)
	if err != nil {
		log.Printf("[UserService] Ошибка при получении рефералов для кода %s: %v", user.RefCode, err)
		return nil, 0, err
	}

	count, err := s.userRepo.CountByReferrerCode(user.RefCode)
	if err != nil {
		return nil, 0, err
	}

	return referrals, count, nil
}
