package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в маршруте (например, "id" или "userId").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// При нечисловом значении запрос прерывается с кодом 400.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s: %q", paramName, raw)})
			c.Abort()
			return
		}
		// Сохраняем как uint для единообразия с типами сущностей
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
