package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Answer представляет ответ участника на один вопрос.
// Ответы хранятся по значению внутри Result как элементы JSONB-массива.
type Answer struct {
	// QuestionID — идентификатор вопроса, присвоенный клиентом.
	// Вопросы викторины не имеют собственной идентичности в хранилище,
	// поэтому значение не проверяется на стороне сервера.
	QuestionID string `json:"question_id"`

	// SelectedOption — индекс выбранного варианта (multiple-choice)
	SelectedOption *int `json:"selected_option,omitempty"`
	// TextAnswer — свободный текстовый ответ (fill-in-blank)
	TextAnswer string `json:"text_answer,omitempty"`

	IsCorrect bool `json:"is_correct"`
	Points    int  `json:"points"`

	// AnsweredAt — момент отправки ответа участником
	AnsweredAt time.Time `json:"answered_at"`
}

// AnswerList - пользовательский тип для хранения ответов в JSONB
type AnswerList []Answer

// Scan реализует интерфейс sql.Scanner для AnswerList
func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*l = AnswerList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value реализует интерфейс driver.Valuer для AnswerList
func (l AnswerList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Result представляет итог прохождения викторины пользователем.
// Итоговые поля (total_score, max_score, percentage, cheating_attempts)
// сохраняются в том виде, в котором их прислал клиент: сервер не
// пересчитывает их по ключу ответов викторины.
type Result struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	UserID  uint       `gorm:"not null;index" json:"user_id"`
	QuizID  uint       `gorm:"not null;index" json:"quiz_id"`
	Answers AnswerList `gorm:"type:jsonb;not null" json:"answers"`

	TotalScore int     `gorm:"not null;default:0" json:"total_score"`
	MaxScore   int     `gorm:"not null;default:0" json:"max_score"`
	Percentage float64 `gorm:"not null;default:0" json:"percentage"`

	CompletedAt      time.Time `gorm:"not null" json:"completed_at"`
	TimeTakenSec     int       `gorm:"not null;default:0" json:"time_taken"` // общее время прохождения (секунды)
	CheatingAttempts int       `gorm:"not null;default:0" json:"cheating_attempts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}
