package repository

import (
	"github.com/showtime/kahoot-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	// GetByRefCode возвращает владельца реферального кода
	GetByRefCode(refCode string) (*entity.User, error)
	ExistsByRefCode(refCode string) (bool, error)
	// ListByReferrerCode возвращает пользователей, приглашённых по данному коду
	ListByReferrerCode(referrerCode string) ([]entity.User, error)
	CountByReferrerCode(referrerCode string) (int64, error)
	Update(user *entity.User) error
}
