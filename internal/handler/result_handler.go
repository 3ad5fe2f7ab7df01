package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/showtime/kahoot-api/internal/domain/entity"
	"github.com/showtime/kahoot-api/internal/handler/dto"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
	"github.com/showtime/kahoot-api/internal/service"
)

// ResultHandler обрабатывает запросы, связанные с результатами викторин
type ResultHandler struct {
	resultService *service.ResultService
	quizService   *service.QuizService
}

// NewResultHandler создает новый обработчик результатов
func NewResultHandler(resultService *service.ResultService, quizService *service.QuizService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		quizService:   quizService,
	}
}

// ListResults возвращает все результаты
// GET /api/results
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.resultService.ListResults()
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResultResponse(results))
}

// GetResult возвращает результат по ID
// GET /api/results/:id
func (h *ResultHandler) GetResult(c *gin.Context) {
	resultID := c.MustGet("resultID").(uint)

	result, err := h.resultService.GetResultByID(resultID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// ListResultsByUser возвращает результаты указанного пользователя
// GET /api/results/user/:userId
func (h *ResultHandler) ListResultsByUser(c *gin.Context) {
	userID := c.MustGet("ownerID").(uint)

	results, err := h.resultService.ListResultsByUser(userID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResultResponse(results))
}

// ListResultsByQuiz возвращает результаты указанной викторины
// GET /api/results/quiz/:quizId
func (h *ResultHandler) ListResultsByQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)

	results, err := h.resultService.ListResultsByQuiz(quizID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResultResponse(results))
}

// CreateResult сохраняет результат в присланном виде, без пересчёта итогов
// POST /api/results
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var req dto.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.CreateResult(req.ToEntity())
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewResultResponse(result))
}

// DeleteResult удаляет результат; повторный вызов тоже отвечает 204
// DELETE /api/results/:id
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	resultID := c.MustGet("resultID").(uint)

	if err := h.resultService.DeleteResult(resultID); err != nil {
		h.handleResultError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportResultsByQuiz выгружает все результаты викторины в CSV или XLSX
// GET /api/results/quiz/:quizId/export?format=csv|xlsx
func (h *ResultHandler) ExportResultsByQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)
	format := c.DefaultQuery("format", "csv")

	// Викторина должна существовать, иначе выгрузка пустого файла собьет с толку
	quiz, err := h.quizService.GetQuizByID(quizID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	results, err := h.resultService.ListResultsByQuiz(quizID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_%d_results_%s", quizID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, results, quiz, filename)
	default:
		h.exportCSV(c, results, filename)
	}
}

// exportCSV пишет результаты в CSV с BOM для корректного открытия в Excel
func (h *ResultHandler) exportCSV(c *gin.Context, results []entity.Result, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Пользователь", "Очки", "Максимум", "Процент", "Время (сек)", "Попытки читинга", "Завершено"})

	for _, r := range results {
		writer.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.UserID), 10),
			strconv.Itoa(r.TotalScore),
			strconv.Itoa(r.MaxScore),
			strconv.FormatFloat(r.Percentage, 'f', 2, 64),
			strconv.Itoa(r.TimeTakenSec),
			strconv.Itoa(r.CheatingAttempts),
			r.CompletedAt.Format(time.RFC3339),
		})
	}
}

// exportXLSX пишет результаты в XLSX через StreamWriter
func (h *ResultHandler) exportXLSX(c *gin.Context, results []entity.Result, quiz *entity.Quiz, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Результаты"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ResultHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Пользователь", "Викторина", "Очки", "Максимум", "Процент", "Время (сек)", "Попытки читинга", "Завершено"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ResultHandler] Ошибка записи заголовков: %v", err)
	}

	for i, r := range results {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{
			r.ID,
			r.UserID,
			sanitizeForExcel(quiz.Title),
			r.TotalScore,
			r.MaxScore,
			r.Percentage,
			r.TimeTakenSec,
			r.CheatingAttempts,
			r.CompletedAt.Format(time.RFC3339),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ResultHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ResultHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ResultHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует строки, которые Excel мог бы принять за формулу
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// handleResultError преобразует ошибки сервисного слоя в HTTP-ответы
func (h *ResultHandler) handleResultError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in ResultHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
