package dto

import (
	"time"

	"github.com/showtime/kahoot-api/internal/domain/entity"
)

// AnswerPayload описывает ответ участника в запросах и ответах API
type AnswerPayload struct {
	QuestionID     string     `json:"question_id"`
	SelectedOption *int       `json:"selected_option,omitempty"`
	TextAnswer     string     `json:"text_answer,omitempty"`
	IsCorrect      bool       `json:"is_correct"`
	Points         int        `json:"points"`
	AnsweredAt     *time.Time `json:"answered_at,omitempty"`
}

// ToEntity преобразует ответ запроса в сущность.
// Незаполненный answered_at дополняется моментом отправки на сервисном слое.
func (p *AnswerPayload) ToEntity() entity.Answer {
	answer := entity.Answer{
		QuestionID:     p.QuestionID,
		SelectedOption: p.SelectedOption,
		TextAnswer:     p.TextAnswer,
		IsCorrect:      p.IsCorrect,
		Points:         p.Points,
	}
	if p.AnsweredAt != nil {
		answer.AnsweredAt = *p.AnsweredAt
	}
	return answer
}

// NewAnswerPayload создает DTO для ответа участника
func NewAnswerPayload(a *entity.Answer) AnswerPayload {
	answeredAt := a.AnsweredAt
	return AnswerPayload{
		QuestionID:     a.QuestionID,
		SelectedOption: a.SelectedOption,
		TextAnswer:     a.TextAnswer,
		IsCorrect:      a.IsCorrect,
		Points:         a.Points,
		AnsweredAt:     &answeredAt,
	}
}

// ResultRequest представляет тело запроса на сохранение результата.
// Итоговые показатели приходят от клиента и сохраняются как есть.
type ResultRequest struct {
	UserID           uint            `json:"user_id" binding:"required"`
	QuizID           uint            `json:"quiz_id" binding:"required"`
	Answers          []AnswerPayload `json:"answers"`
	TotalScore       int             `json:"total_score"`
	MaxScore         int             `json:"max_score"`
	Percentage       float64         `json:"percentage"`
	CompletedAt      *time.Time      `json:"completed_at"`
	TimeTaken        int             `json:"time_taken"`
	CheatingAttempts int             `json:"cheating_attempts"`
}

// ToEntity преобразует запрос в сущность результата
func (r *ResultRequest) ToEntity() *entity.Result {
	answers := make(entity.AnswerList, 0, len(r.Answers))
	for i := range r.Answers {
		answers = append(answers, r.Answers[i].ToEntity())
	}
	result := &entity.Result{
		UserID:           r.UserID,
		QuizID:           r.QuizID,
		Answers:          answers,
		TotalScore:       r.TotalScore,
		MaxScore:         r.MaxScore,
		Percentage:       r.Percentage,
		TimeTakenSec:     r.TimeTaken,
		CheatingAttempts: r.CheatingAttempts,
	}
	if r.CompletedAt != nil {
		result.CompletedAt = *r.CompletedAt
	}
	return result
}

// ResultResponse представляет результат в формате для ответа клиенту
type ResultResponse struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"user_id"`
	QuizID           uint            `json:"quiz_id"`
	Answers          []AnswerPayload `json:"answers"`
	TotalScore       int             `json:"total_score"`
	MaxScore         int             `json:"max_score"`
	Percentage       float64         `json:"percentage"`
	CompletedAt      time.Time       `json:"completed_at"`
	TimeTaken        int             `json:"time_taken"`
	CheatingAttempts int             `json:"cheating_attempts"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewResultResponse создает DTO для результата
func NewResultResponse(result *entity.Result) *ResultResponse {
	answers := make([]AnswerPayload, 0, len(result.Answers))
	for i := range result.Answers {
		answers = append(answers, NewAnswerPayload(&result.Answers[i]))
	}
	return &ResultResponse{
		ID:               result.ID,
		UserID:           result.UserID,
		QuizID:           result.QuizID,
		Answers:          answers,
		TotalScore:       result.TotalScore,
		MaxScore:         result.MaxScore,
		Percentage:       result.Percentage,
		CompletedAt:      result.CompletedAt,
		TimeTaken:        result.TimeTakenSec,
		CheatingAttempts: result.CheatingAttempts,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}
}

// NewListResultResponse создает список DTO результатов
func NewListResultResponse(results []entity.Result) []*ResultResponse {
	responses := make([]*ResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, NewResultResponse(&results[i]))
	}
	return responses
}
