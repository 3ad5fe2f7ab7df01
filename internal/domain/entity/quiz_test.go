package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuiz_ApplyDefaults(t *testing.T) {
	// Arrange: викторина без попыток, вопросов и с вопросом без очков
	quiz := &Quiz{
		Title: "Тестовая викторина",
		Questions: QuestionList{
			{Text: "Вопрос без очков", Type: QuestionTypeMultipleChoice},
		},
	}

	// Act
	quiz.ApplyDefaults()

	// Assert
	assert.Equal(t, DefaultMaxAttempts, quiz.MaxAttempts, "MaxAttempts по умолчанию должен быть выставлен")
	assert.Equal(t, DefaultQuestionPoints, quiz.Questions[0].Points, "Вопросы должны получить очки по умолчанию")
	assert.Equal(t, DefaultQuestionTimeLimitSec, quiz.Questions[0].TimeLimitSec)
}

func TestQuiz_ApplyDefaults_NilQuestions(t *testing.T) {
	// Arrange: викторина без списка вопросов
	quiz := &Quiz{Title: "Пустая викторина"}

	// Act
	quiz.ApplyDefaults()

	// Assert: nil-список превращается в пустой, чтобы в JSONB попал "[]"
	assert.NotNil(t, quiz.Questions)
	assert.Equal(t, 0, quiz.QuestionCount())
}

func TestQuiz_QuestionCount(t *testing.T) {
	// Arrange
	quiz := &Quiz{
		Questions: QuestionList{
			{Text: "Вопрос 1"},
			{Text: "Вопрос 2"},
			{Text: "Вопрос 3"},
		},
	}

	// Act & Assert
	assert.Equal(t, 3, quiz.QuestionCount())
}

func TestQuiz_TableName(t *testing.T) {
	assert.Equal(t, "quizzes", Quiz{}.TableName(), "TableName должен возвращать 'quizzes'")
}
