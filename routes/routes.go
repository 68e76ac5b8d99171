package routes

import (
	"github.com/drxagencia/mateus-burger/controllers"
	"github.com/drxagencia/mateus-burger/middlewares"
	"github.com/drxagencia/mateus-burger/ws"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Empresa  *controllers.EmpresaController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Status   *controllers.StatusController
	Hub      *ws.StatusHub
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.SessionMiddleware())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.GET("/empresa", h.Empresa.Get)
	r.GET("/status", h.Status.Get)
	r.GET("/ws/status", h.Hub.HandleWebSocket)

	cart := r.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.Add)
		cart.DELETE("/items/:id", h.Cart.Remove)
		cart.DELETE("", h.Cart.Clear)
	}

	r.POST("/checkout/validate", h.Checkout.Validate)
	r.POST("/checkout", h.Checkout.Submit)
}
