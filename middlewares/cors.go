package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  []string{"*"}, // dev; em prod restringir ao domínio do cardápio
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Session-Id"},
		ExposeHeaders: []string{"Content-Length", "X-Session-Id"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(cfg)
}
