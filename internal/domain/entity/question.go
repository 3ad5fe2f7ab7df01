package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Типы вопросов
const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeFillInBlank    = "fill-in-blank"
	QuestionTypeImage          = "image-question"
)

// Значения по умолчанию для вопроса
const (
	DefaultQuestionPoints       = 1
	DefaultQuestionTimeLimitSec = 30
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос викторины.
// Вопросы не имеют собственной идентичности: они хранятся по значению
// внутри Quiz как элементы JSONB-массива, порядок значим, дубликаты допустимы.
type Question struct {
	Text  string `json:"text"`
	Type  string `json:"type"` // multiple-choice, fill-in-blank, image-question
	Image string `json:"image,omitempty"`

	// Options — упорядоченные варианты ответа для multiple-choice
	Options StringArray `json:"options,omitempty"`

	// CorrectOption — индекс правильного варианта (multiple-choice)
	CorrectOption *int `json:"correct_option,omitempty"`
	// CorrectAnswerText — правильный текстовый ответ (fill-in-blank)
	CorrectAnswerText string `json:"correct_answer_text,omitempty"`

	Points       int `json:"points"`
	TimeLimitSec int `json:"time_limit_sec"`
}

// ApplyDefaults выставляет значения по умолчанию для незаполненных полей.
// Вызывается при конструировании викторины; корректность индекса правильного
// ответа при этом не проверяется.
func (q *Question) ApplyDefaults() {
	if q.Points <= 0 {
		q.Points = DefaultQuestionPoints
	}
	if q.TimeLimitSec <= 0 {
		q.TimeLimitSec = DefaultQuestionTimeLimitSec
	}
}

// QuestionList - пользовательский тип для хранения вопросов викторины в JSONB
type QuestionList []Question

// Scan реализует интерфейс sql.Scanner для QuestionList
func (l *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*l = QuestionList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value реализует интерфейс driver.Valuer для QuestionList
func (l QuestionList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}
