package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam создает middleware, разбирающее числовой идентификатор из
// URL (квизы и записи истории адресуются целыми id) и кладущее его в контекст
// Gin под contextKey. Нечисловое значение обрывает запрос со статусом 400 —
// обработчики дальше по цепочке читают c.MustGet без повторной проверки.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Invalid %s", paramName)})
			c.Abort()
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
