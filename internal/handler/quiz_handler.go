package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/quizify-api/internal/handler/dto"
	"github.com/yourusername/quizify-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService    *service.QuizService
	maxUploadBytes int64
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService, maxUploadBytes int64) *QuizHandler {
	return &QuizHandler{
		quizService:    quizService,
		maxUploadBytes: maxUploadBytes,
	}
}

// GenerateQuizRequest представляет запрос на генерацию викторины по теме
type GenerateQuizRequest struct {
	Topic         string   `json:"topic" binding:"required"`
	QuestionCount int      `json:"questionCount" binding:"required"`
	QuestionTypes []string `json:"questionTypes" binding:"required"`
	Difficulty    string   `json:"difficulty" binding:"required"`
}

// GenerateQuiz обрабатывает запрос на генерацию викторины по теме
// POST /api/quizzes/generate
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	quiz, err := h.quizService.GenerateFromTopic(c.Request.Context(), req.Topic, service.GenerationParams{
		QuestionCount: req.QuestionCount,
		QuestionTypes: req.QuestionTypes,
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, true))
}

// GenerateQuizFromFile обрабатывает генерацию викторины по PDF-документу.
// Параметры генерации приходят form-полями рядом с файлом; questionTypes —
// JSON-массив строк.
// POST /api/quizzes/generate-from-file (multipart/form-data)
func (h *QuizHandler) GenerateQuizFromFile(c *gin.Context) {
	filename, data, ok := readUploadedPDF(c, h.maxUploadBytes)
	if !ok {
		return
	}

	params, ok := readGenerationParams(c)
	if !ok {
		return
	}

	quiz, err := h.quizService.GenerateFromDocument(c.Request.Context(), filename, data, params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, true))
}

// GetQuiz возвращает викторину вместе с вопросами
// GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	quiz, err := h.quizService.GetQuizWithQuestions(quizID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, true))
}

// SubmitAnswersRequest представляет запрос на отправку ответов.
// Ключи карты — идентификаторы вопросов.
type SubmitAnswersRequest struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

// SubmitAnswers принимает ответы, оценивает их и записывает результат в историю
// POST /api/quizzes/:id/submit
func (h *QuizHandler) SubmitAnswers(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)

	var req SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.quizService.SubmitAnswers(quizID, req.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// readUploadedPDF извлекает PDF из multipart-запроса: только *.pdf,
// размер не больше настроенного лимита. При ошибке ответ уже записан.
func readUploadedPDF(c *gin.Context, maxUploadBytes int64) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no file uploaded"})
		return "", nil, false
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "only PDF files are supported"})
		return "", nil, false
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("file is too large, limit is %d MB", maxUploadBytes/(1024*1024)),
		})
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleServiceError(c, err)
		return "", nil, false
	}
	defer file.Close()

	// Лимит на чтение страхует от расхождения заявленного и реального размера
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		handleServiceError(c, err)
		return "", nil, false
	}
	if int64(len(data)) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("file is too large, limit is %d MB", maxUploadBytes/(1024*1024)),
		})
		return "", nil, false
	}

	return fileHeader.Filename, data, true
}

// readGenerationParams читает параметры генерации из form-полей
// multipart-запроса. При ошибке ответ уже записан.
func readGenerationParams(c *gin.Context) (service.GenerationParams, bool) {
	var params service.GenerationParams

	countStr := c.PostForm("questionCount")
	count, err := strconv.Atoi(countStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "questionCount must be an integer"})
		return params, false
	}

	var types []string
	if err := json.Unmarshal([]byte(c.PostForm("questionTypes")), &types); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "questionTypes must be a JSON array of strings"})
		return params, false
	}

	params = service.GenerationParams{
		QuestionCount: count,
		QuestionTypes: types,
		Difficulty:    c.PostForm("difficulty"),
	}
	return params, true
}
