package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/quizify-api/internal/domain/entity"
	"github.com/yourusername/quizify-api/internal/handler/dto"
	"github.com/yourusername/quizify-api/internal/service"
)

// HistoryHandler обрабатывает запросы к истории прохождений
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler создает новый обработчик истории
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// ListHistory возвращает все записи истории, новые первыми
// GET /api/history
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	records, err := h.historyService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListHistoryResponse(records))
}

// GetHistoryRecord возвращает последнюю запись истории для викторины
// GET /api/history/:quizId
func (h *HistoryHandler) GetHistoryRecord(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	record, err := h.historyService.FindByQuizID(quizID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryRecordResponse(record))
}

// DeleteHistory удаляет все записи истории для викторины. Сама викторина
// остаётся в хранилище.
// DELETE /api/history/:quizId
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)

	if err := h.historyService.Delete(quizID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History deleted successfully"})
}

// ExportHistory экспортирует всю историю в Excel
// GET /api/history/export
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	records, err := h.historyService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_history_%s", time.Now().Format("2006-01-02"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "History"
	f.SetSheetName("Sheet1", sheetName)

	// StreamWriter на случай больших журналов
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[HistoryHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Дата", "Викторина", "Тема", "Сложность", "Вопросов", "Правильных", "Неправильных", "Оценка (%)"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[HistoryHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range records {
		r := &records[i]
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{
			r.Date.Format("2006-01-02 15:04"),
			sanitizeForExcel(r.Quiz.Title),
			sanitizeForExcel(r.Quiz.Topic),
			translateDifficulty(r.Quiz.Difficulty),
			r.Result.TotalQuestions,
			r.Result.CorrectCount,
			r.Result.IncorrectCount,
			r.Result.Score,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[HistoryHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[HistoryHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[HistoryHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel
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

// translateDifficulty переводит уровень сложности на русский
func translateDifficulty(difficulty string) string {
	switch difficulty {
	case entity.DifficultyEasy:
		return "Лёгкий"
	case entity.DifficultyMedium:
		return "Средний"
	case entity.DifficultyHard:
		return "Сложный"
	default:
		return difficulty
	}
}
