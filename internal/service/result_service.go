package service

import (
	"fmt"
	"time"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	"github.com/showtime/kahoot-api/internal/domain/repository"
)

// ResultService предоставляет методы для работы с результатами
type ResultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(resultRepo repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// ListResults возвращает все результаты
func (s *ResultService) ListResults() ([]entity.Result, error) {
	return s.resultRepo.GetAll()
}

// GetResultByID возвращает результат по ID
func (s *ResultService) GetResultByID(resultID uint) (*entity.Result, error) {
	return s.resultRepo.GetByID(resultID)
}

// ListResultsByUser возвращает результаты указанного пользователя
func (s *ResultService) ListResultsByUser(userID uint) ([]entity.Result, error) {
	return s.resultRepo.GetByUser(userID)
}

// ListResultsByQuiz возвращает результаты указанной викторины
func (s *ResultService) ListResultsByQuiz(quizID uint) ([]entity.Result, error) {
	return s.resultRepo.GetByQuiz(quizID)
}

// CreateResult сохраняет результат в присланном виде.
// Итоговые очки, процент и счётчик читов НЕ пересчитываются по ключу
// ответов викторины: клиент присылает уже подсчитанный итог.
func (s *ResultService) CreateResult(result *entity.Result) (*entity.Result, error) {
	result.ID = 0

	now := time.Now()
	if result.CompletedAt.IsZero() {
		result.CompletedAt = now
	}
	for i := range result.Answers {
		if result.Answers[i].AnsweredAt.IsZero() {
			result.Answers[i].AnsweredAt = now
		}
	}
	if result.Answers == nil {
		result.Answers = entity.AnswerList{}
	}

	if err := s.resultRepo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to create result: %w", err)
	}
	return result, nil
}

// DeleteResult удаляет результат. Повторное удаление не является ошибкой.
func (s *ResultService) DeleteResult(resultID uint) error {
	if err := s.resultRepo.Delete(resultID); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}
