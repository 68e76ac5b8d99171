package utils

import "github.com/gin-gonic/gin"

// SessionID lê o token de sessão colocado no contexto pelo middleware.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
