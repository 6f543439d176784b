package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// handleServiceError преобразует ошибки сервисного слоя в HTTP-ответ.
// Все обработчики используют единую раскладку статусов, чтобы клиент
// мог полагаться на неё независимо от endpoint-а.
func handleServiceError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		// Для ошибок валидации отдаём полный список нарушенных полей
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error(), "errors": verr.Fields})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrExtraction):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrGeneration):
		// Детали сбоя генератора остаются в логах, клиент получает
		// общий ответ без внутренностей upstream-а
		log.Printf("[Handler] Generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to generate quiz. Please try again."})
	default:
		log.Printf("ERROR: Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
