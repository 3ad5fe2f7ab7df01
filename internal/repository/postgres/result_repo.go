package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет результат прохождения викторины
func (r *ResultRepo) Create(result *entity.Result) error {
	return r.db.Create(result).Error
}

// GetByID возвращает результат по ID
func (r *ResultRepo) GetByID(id uint) (*entity.Result, error) {
	var result entity.Result
	err := r.db.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// GetAll возвращает все результаты
func (r *ResultRepo) GetAll() ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Order("id").Find(&results).Error
	return results, err
}

// GetByUser возвращает результаты указанного пользователя
func (r *ResultRepo) GetByUser(userID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&results).Error
	return results, err
}

// GetByQuiz возвращает результаты указанной викторины
func (r *ResultRepo) GetByQuiz(quizID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("quiz_id = ?", quizID).Order("id").Find(&results).Error
	return results, err
}

// Delete удаляет результат. Отсутствие записи не считается ошибкой.
func (r *ResultRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Result{}, id).Error
}
