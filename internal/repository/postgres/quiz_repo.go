package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create создает новую викторину
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByID возвращает викторину по ID
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetAll возвращает все викторины без фильтрации и пагинации
func (r *QuizRepo) GetAll() ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.Order("id").Find(&quizzes).Error
	return quizzes, err
}

// GetByCreator возвращает викторины, созданные указанным пользователем
func (r *QuizRepo) GetByCreator(userID uint) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.Where("created_by = ?", userID).Order("id").Find(&quizzes).Error
	return quizzes, err
}

// Update сохраняет викторину целиком
func (r *QuizRepo) Update(quiz *entity.Quiz) error {
	return r.db.Save(quiz).Error
}

// Delete удаляет викторину. Отсутствие записи не считается ошибкой.
func (r *QuizRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Quiz{}, id).Error
}
