package entity

import (
	"time"
)

// DefaultMaxAttempts — количество попыток прохождения по умолчанию
const DefaultMaxAttempts = 1

// Quiz представляет викторину
type Quiz struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"size:100;not null" json:"title"`
	Description string       `gorm:"size:500;not null;default:''" json:"description"`
	Questions   QuestionList `gorm:"type:jsonb;not null" json:"questions"`

	// Окно доступности викторины. Оба конца опциональны.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	DurationMin int  `gorm:"not null;default:0" json:"duration"` // общее время прохождения (минуты)
	IsActive    bool `gorm:"not null;default:false" json:"is_active"`
	MaxAttempts int  `gorm:"not null;default:1" json:"max_attempts"`

	// CreatedBy — идентификатор пользователя-владельца. Хранится как простая
	// ссылка; объект пользователя сервисный слой не подтягивает автоматически.
	CreatedBy uint `gorm:"not null;index" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// ApplyDefaults выставляет значения по умолчанию для викторины и её вопросов
func (q *Quiz) ApplyDefaults() {
	if q.MaxAttempts <= 0 {
		q.MaxAttempts = DefaultMaxAttempts
	}
	if q.Questions == nil {
		q.Questions = QuestionList{}
	}
	for i := range q.Questions {
		q.Questions[i].ApplyDefaults()
	}
}

// QuestionCount возвращает количество вопросов в викторине
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}
