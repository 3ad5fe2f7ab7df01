package repository

import (
	"github.com/showtime/kahoot-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами
type QuizRepository interface {
	Create(quiz *entity.Quiz) error
	GetByID(id uint) (*entity.Quiz, error)
	GetAll() ([]entity.Quiz, error)
	// GetByCreator возвращает викторины, созданные указанным пользователем
	GetByCreator(userID uint) ([]entity.Quiz, error)
	Update(quiz *entity.Quiz) error
	// Delete идемпотентен: отсутствие записи не является ошибкой
	Delete(id uint) error
}
