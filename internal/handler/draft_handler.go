package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/quizify-api/internal/handler/dto"
	"github.com/yourusername/quizify-api/internal/service"
)

// DraftHandler обрабатывает пошаговое создание викторины: стадия источника,
// стадия настройки и финальная генерация. Черновик живёт в рамках сессии
// (ключ кладёт в контекст session middleware).
type DraftHandler struct {
	draftService   *service.DraftService
	maxUploadBytes int64
}

// NewDraftHandler создает новый обработчик черновиков
func NewDraftHandler(draftService *service.DraftService, maxUploadBytes int64) *DraftHandler {
	return &DraftHandler{
		draftService:   draftService,
		maxUploadBytes: maxUploadBytes,
	}
}

// StartTopicDraftRequest представляет запрос на черновик по теме
type StartTopicDraftRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// StartTopicDraft начинает создание викторины по теме. Новый черновик
// перезаписывает прежний в любом его состоянии.
// POST /api/drafts/topic
func (h *DraftHandler) StartTopicDraft(c *gin.Context) {
	sessionKey := c.MustGet("sessionKey").(string)

	var req StartTopicDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	draft, err := h.draftService.StartTopicDraft(sessionKey, req.Topic)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDraftResponse(draft))
}

// StartDocumentDraft начинает создание викторины по PDF-документу
// POST /api/drafts/document (multipart/form-data)
func (h *DraftHandler) StartDocumentDraft(c *gin.Context) {
	sessionKey := c.MustGet("sessionKey").(string)

	filename, data, ok := readUploadedPDF(c, h.maxUploadBytes)
	if !ok {
		return
	}

	draft, err := h.draftService.StartDocumentDraft(sessionKey, filename, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDraftResponse(draft))
}

// ConfigureDraftRequest представляет шаг настройки черновика.
// Пропущенные поля получают значения по умолчанию.
type ConfigureDraftRequest struct {
	QuestionCount int      `json:"questionCount"`
	QuestionTypes []string `json:"questionTypes"`
	Difficulty    string   `json:"difficulty"`
}

// ConfigureDraft применяет параметры генерации к текущему черновику
// PUT /api/drafts
func (h *DraftHandler) ConfigureDraft(c *gin.Context) {
	sessionKey := c.MustGet("sessionKey").(string)

	var req ConfigureDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	draft, err := h.draftService.Configure(sessionKey, service.GenerationParams{
		QuestionCount: req.QuestionCount,
		QuestionTypes: req.QuestionTypes,
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDraftResponse(draft))
}

// GetDraft возвращает текущий черновик сессии
// GET /api/drafts
func (h *DraftHandler) GetDraft(c *gin.Context) {
	sessionKey := c.MustGet("sessionKey").(string)

	draft, err := h.draftService.Get(sessionKey)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDraftResponse(draft))
}

// AbandonDraft отбрасывает черновик вместе с загруженным документом
// DELETE /api/drafts
func (h *DraftHandler) AbandonDraft(c *gin.Context) {
	sessionKey := c.MustGet("sessionKey").(string)

	if err := h.draftService.Abandon(sessionKey); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft abandoned"})
}

// GenerateFromDraft потребляет настроенный черновик и возвращает готовую
// викторину. Повторная отправка, пока генерация в полёте, получает 409.
// POST /api/drafts/generate
func (h *DraftHandler) GenerateFromDraft(c *gin.Context) {
	sessionKey := c.MustGet("sessionKey").(string)

	quiz, err := h.draftService.GenerateFromDraft(c.Request.Context(), sessionKey)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, true))
}
