package dto

import (
	"time"

	"github.com/showtime/kahoot-api/internal/domain/entity"
)

// QuestionPayload описывает вопрос в запросах и ответах API.
// Схема сериализации задана явно, поле в поле, без отражённого маппинга.
type QuestionPayload struct {
	Text              string   `json:"text"`
	Type              string   `json:"type"`
	Image             string   `json:"image,omitempty"`
	Options           []string `json:"options,omitempty"`
	CorrectOption     *int     `json:"correct_option,omitempty"`
	CorrectAnswerText string   `json:"correct_answer_text,omitempty"`
	Points            int      `json:"points"`
	TimeLimitSec      int      `json:"time_limit_sec"`
}

// ToEntity преобразует вопрос запроса в сущность
func (p *QuestionPayload) ToEntity() entity.Question {
	return entity.Question{
		Text:              p.Text,
		Type:              p.Type,
		Image:             p.Image,
		Options:           entity.StringArray(p.Options),
		CorrectOption:     p.CorrectOption,
		CorrectAnswerText: p.CorrectAnswerText,
		Points:            p.Points,
		TimeLimitSec:      p.TimeLimitSec,
	}
}

// NewQuestionPayload создает DTO для вопроса
func NewQuestionPayload(q *entity.Question) QuestionPayload {
	return QuestionPayload{
		Text:              q.Text,
		Type:              q.Type,
		Image:             q.Image,
		Options:           []string(q.Options),
		CorrectOption:     q.CorrectOption,
		CorrectAnswerText: q.CorrectAnswerText,
		Points:            q.Points,
		TimeLimitSec:      q.TimeLimitSec,
	}
}

// QuizRequest представляет тело запроса на создание или обновление викторины.
// Содержимое сохраняется как прислано: пустой заголовок допустим, проверяется
// только максимальная длина (ограничение колонок в БД).
type QuizRequest struct {
	Title       string            `json:"title" binding:"omitempty,max=100"`
	Description string            `json:"description" binding:"omitempty,max=500"`
	Questions   []QuestionPayload `json:"questions"`
	StartTime   *time.Time        `json:"start_time"`
	EndTime     *time.Time        `json:"end_time"`
	Duration    int               `json:"duration"`
	IsActive    bool              `json:"is_active"`
	MaxAttempts int               `json:"max_attempts"`
	CreatedBy   uint              `json:"created_by"`
}

// ToEntity преобразует запрос в сущность викторины
func (r *QuizRequest) ToEntity() *entity.Quiz {
	questions := make(entity.QuestionList, 0, len(r.Questions))
	for i := range r.Questions {
		questions = append(questions, r.Questions[i].ToEntity())
	}
	return &entity.Quiz{
		Title:       r.Title,
		Description: r.Description,
		Questions:   questions,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		DurationMin: r.Duration,
		IsActive:    r.IsActive,
		MaxAttempts: r.MaxAttempts,
		CreatedBy:   r.CreatedBy,
	}
}

// QuizResponse представляет викторину в формате для ответа клиенту
type QuizResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []QuestionPayload `json:"questions"`
	StartTime   *time.Time        `json:"start_time,omitempty"`
	EndTime     *time.Time        `json:"end_time,omitempty"`
	Duration    int               `json:"duration"`
	IsActive    bool              `json:"is_active"`
	MaxAttempts int               `json:"max_attempts"`
	CreatedBy   uint              `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(quiz *entity.Quiz) *QuizResponse {
	questions := make([]QuestionPayload, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		questions = append(questions, NewQuestionPayload(&quiz.Questions[i]))
	}
	return &QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
		StartTime:   quiz.StartTime,
		EndTime:     quiz.EndTime,
		Duration:    quiz.DurationMin,
		IsActive:    quiz.IsActive,
		MaxAttempts: quiz.MaxAttempts,
		CreatedBy:   quiz.CreatedBy,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}

// NewListQuizResponse создает список DTO викторин
func NewListQuizResponse(quizzes []entity.Quiz) []*QuizResponse {
	responses := make([]*QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, NewQuizResponse(&quizzes[i]))
	}
	return responses
}
