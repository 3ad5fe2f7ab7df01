package repository

import (
	"github.com/showtime/kahoot-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами
type ResultRepository interface {
	Create(result *entity.Result) error
	GetByID(id uint) (*entity.Result, error)
	GetAll() ([]entity.Result, error)
	GetByUser(userID uint) ([]entity.Result, error)
	GetByQuiz(quizID uint) ([]entity.Result, error)
	// Delete идемпотентен: отсутствие записи не является ошибкой
	Delete(id uint) error
}
