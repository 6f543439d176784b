package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKeyHeader — заголовок, которым клиент предъявляет свой ключ сессии.
// Аккаунтов нет: ключ выдается сервером при первом запросе и дальше
// присылается клиентом сам.
const SessionKeyHeader = "X-Session-Key"

// maxSessionKeyLength отсекает произвольно длинные значения заголовка,
// которые иначе попали бы в ключи Redis
const maxSessionKeyLength = 128

// SessionKey извлекает ключ сессии из заголовка запроса и кладет его в
// контекст Gin под ключом "sessionKey". Если клиент пришел без ключа,
// выдается новый; выданный ключ возвращается в одноимённом заголовке
// ответа, чтобы клиент мог его сохранить.
func SessionKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(SessionKeyHeader)
		if key == "" {
			key = uuid.NewString()
		}
		if len(key) > maxSessionKeyLength {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session key"})
			c.Abort()
			return
		}

		c.Header(SessionKeyHeader, key)
		c.Set("sessionKey", key)
		c.Next()
	}
}
