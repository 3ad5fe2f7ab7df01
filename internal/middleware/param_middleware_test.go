package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam_ValidID(t *testing.T) {
	// Arrange
	router := gin.New()
	router.GET("/quizzes/:id", ExtractUintParam("id", "quizID"), func(c *gin.Context) {
		quizID := c.MustGet("quizID").(uint)
		c.JSON(http.StatusOK, gin.H{"quiz_id": quizID})
	})

	req, err := http.NewRequest("GET", "/quizzes/42", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestExtractUintParam_NonNumericID(t *testing.T) {
	// Arrange
	router := gin.New()
	handlerCalled := false
	router.GET("/quizzes/:id", ExtractUintParam("id", "quizID"), func(c *gin.Context) {
		handlerCalled = true
	})

	req, err := http.NewRequest("GET", "/quizzes/abc", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert: запрос прерывается до обработчика
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, handlerCalled, "Обработчик не должен вызываться при невалидном параметре")
}

func TestExtractUintParam_NegativeID(t *testing.T) {
	// Arrange
	router := gin.New()
	router.GET("/quizzes/:id", ExtractUintParam("id", "quizID"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, err := http.NewRequest("GET", "/quizzes/-1", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code, "Отрицательный ID не должен приниматься")
}
