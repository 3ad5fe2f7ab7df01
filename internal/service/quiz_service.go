package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	"github.com/showtime/kahoot-api/internal/domain/repository"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
)

// quizCacheTTL — время жизни кешированной викторины
const quizCacheTTL = 5 * time.Minute

// quizCacheKey формирует ключ кеша для викторины
func quizCacheKey(id uint) string {
	return fmt.Sprintf("quiz:%d", id)
}

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	quizRepo  repository.QuizRepository
	cacheRepo repository.CacheRepository
}

// NewQuizService создает новый сервис викторин.
// cacheRepo может быть nil — тогда чтение идёт напрямую из БД.
func NewQuizService(quizRepo repository.QuizRepository, cacheRepo repository.CacheRepository) *QuizService {
	return &QuizService{
		quizRepo:  quizRepo,
		cacheRepo: cacheRepo,
	}
}

// ListQuizzes возвращает все викторины без фильтрации и пагинации
func (s *QuizService) ListQuizzes() ([]entity.Quiz, error) {
	return s.quizRepo.GetAll()
}

// ListQuizzesByUser возвращает викторины, созданные указанным пользователем
func (s *QuizService) ListQuizzesByUser(userID uint) ([]entity.Quiz, error) {
	return s.quizRepo.GetByCreator(userID)
}

// GetQuizByID возвращает викторину по ID.
// Чтение идёт через кеш; ошибки кеша не фатальны и приводят к чтению из БД.
func (s *QuizService) GetQuizByID(quizID uint) (*entity.Quiz, error) {
	if s.cacheRepo != nil {
		var cached entity.Quiz
		err := s.cacheRepo.GetJSON(quizCacheKey(quizID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[QuizService] Ошибка чтения викторины %d из кеша: %v", quizID, err)
		}
	}

	quiz, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(quizCacheKey(quizID), quiz, quizCacheTTL); err != nil {
			log.Printf("[QuizService] Ошибка записи викторины %d в кеш: %v", quizID, err)
		}
	}

	return quiz, nil
}

// CreateQuiz создает новую викторину.
// Идентификатор и временные метки присваивает хранилище; корректность
// вопросов (например, границы индекса правильного ответа) не проверяется.
func (s *QuizService) CreateQuiz(quiz *entity.Quiz) (*entity.Quiz, error) {
	quiz.ID = 0
	quiz.ApplyDefaults()

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

// UpdateQuiz выполняет частичное обновление викторины.
// Из patch переносятся: заголовок, описание, вопросы, длительность, окно
// start/end, максимум попыток и флаг активности. Идентификатор, владелец
// и created_at остаются неизменными после создания.
func (s *QuizService) UpdateQuiz(quizID uint, patch *entity.Quiz) (*entity.Quiz, error) {
	existing, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, err
	}

	patch.ApplyDefaults()

	existing.Title = patch.Title
	existing.Description = patch.Description
	existing.Questions = patch.Questions
	existing.DurationMin = patch.DurationMin
	existing.StartTime = patch.StartTime
	existing.EndTime = patch.EndTime
	existing.MaxAttempts = patch.MaxAttempts
	existing.IsActive = patch.IsActive

	if err := s.quizRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	s.invalidateCache(quizID)
	return existing, nil
}

// DeleteQuiz удаляет викторину. Повторное удаление не является ошибкой.
// Результаты, ссылающиеся на викторину, не затрагиваются.
func (s *QuizService) DeleteQuiz(quizID uint) error {
	if err := s.quizRepo.Delete(quizID); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	s.invalidateCache(quizID)
	return nil
}

// invalidateCache убирает викторину из кеша; ошибки кеша только логируются
func (s *QuizService) invalidateCache(quizID uint) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(quizCacheKey(quizID)); err != nil {
		log.Printf("[QuizService] Ошибка инвалидации кеша викторины %d: %v", quizID, err)
	}
}
