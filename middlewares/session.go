package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderSessionID = "X-Session-Id"

// SessionMiddleware identifica a sacola do cliente por um token opaco.
// Sem token no request, um novo é cunhado e devolvido no header de resposta.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("sessionId", id)
		c.Header(HeaderSessionID, id)
		c.Next()
	}
}
